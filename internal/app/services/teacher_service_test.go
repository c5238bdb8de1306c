package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseadvisor/internal/app/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

// fakeTeacherStore records the calls the service makes and returns canned
// rows.
type fakeTeacherStore struct {
	departmentRows []models.TeacherRow
	courseIDs      []string
	idRows         []models.TeacherRow
	tagRows        []models.TagRow
	exactRows      []models.TeacherSummaryRow
	prefixRows     []models.TeacherSummaryRow

	lastLimit    int
	lastOffset   int
	byIDsCalled  bool
	prefixCalled bool
}

func (f *fakeTeacherStore) TeachersByDepartment(_ context.Context, _ string, limit, offset int) ([]models.TeacherRow, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.departmentRows, nil
}

func (f *fakeTeacherStore) TeacherIDsByCourse(_ context.Context, _ string, limit, offset int) ([]string, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.courseIDs, nil
}

func (f *fakeTeacherStore) TeachersByIDs(_ context.Context, _ []string) ([]models.TeacherRow, error) {
	f.byIDsCalled = true
	return f.idRows, nil
}

func (f *fakeTeacherStore) TagsByTeacher(_ context.Context, _ string, limit, offset int) ([]models.TagRow, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.tagRows, nil
}

func (f *fakeTeacherStore) TeachersByExactName(_ context.Context, _ string, limit, offset int) ([]models.TeacherSummaryRow, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.exactRows, nil
}

func (f *fakeTeacherStore) TeachersByNamePrefix(_ context.Context, _ string, limit, offset int) ([]models.TeacherSummaryRow, error) {
	f.prefixCalled = true
	return f.prefixRows, nil
}

func TestGetTeachersByDepartmentEmptyInput(t *testing.T) {
	store := &fakeTeacherStore{departmentRows: []models.TeacherRow{{TeacherID: "t1"}}}
	svc := NewTeacherService(store)

	teachers, err := svc.GetTeachersByDepartment(context.Background(), "   ", PageOptions{})
	require.NoError(t, err)
	assert.Empty(t, teachers)
	assert.Zero(t, store.lastLimit, "store must not be queried for an empty department")
}

func TestGetTeachersByDepartmentClampsPagination(t *testing.T) {
	store := &fakeTeacherStore{}
	svc := NewTeacherService(store)

	_, err := svc.GetTeachersByDepartment(context.Background(), "CS", PageOptions{
		Limit:  intPtr(999),
		Offset: intPtr(-4),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, store.lastLimit)
	assert.Equal(t, 0, store.lastOffset)

	_, err = svc.GetTeachersByDepartment(context.Background(), "CS", PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, 20, store.lastLimit, "omitted limit uses the department default")
}

func TestGetTeachersByDepartmentMapsRows(t *testing.T) {
	store := &fakeTeacherStore{departmentRows: []models.TeacherRow{
		{TeacherID: "t1", Name: "Ada", Department: "CS", AvgRating: floatPtr(4.2), NumRatings: 17},
		{TeacherID: "t2", Name: "Bob", Department: "CS"},
	}}
	svc := NewTeacherService(store)

	teachers, err := svc.GetTeachersByDepartment(context.Background(), "CS", PageOptions{})
	require.NoError(t, err)
	require.Len(t, teachers, 2)

	assert.Equal(t, "t1", teachers[0].ID)
	assert.Equal(t, 4.2, *teachers[0].AvgRating)
	assert.Equal(t, 17, teachers[0].NumRatings)

	assert.Nil(t, teachers[1].AvgRating)
	assert.Equal(t, 0, teachers[1].NumRatings)
}

func TestGetTeachersByCourseEmptyIDPageShortCircuits(t *testing.T) {
	store := &fakeTeacherStore{courseIDs: nil}
	svc := NewTeacherService(store)

	teachers, err := svc.GetTeachersByCourse(context.Background(), "CSE1321", PageOptions{})
	require.NoError(t, err)
	assert.Empty(t, teachers)
	assert.False(t, store.byIDsCalled, "id-batch fetch must be skipped when the id page is empty")
}

func TestGetTeachersByCourseRanksNullsLast(t *testing.T) {
	store := &fakeTeacherStore{
		courseIDs: []string{"t1", "t2", "t3", "t4"},
		idRows: []models.TeacherRow{
			{TeacherID: "t4", AvgRating: nil},
			{TeacherID: "t2", AvgRating: floatPtr(3.1)},
			{TeacherID: "t1", AvgRating: floatPtr(4.5)},
			{TeacherID: "t3", AvgRating: floatPtr(4.5)},
		},
	}
	svc := NewTeacherService(store)

	teachers, err := svc.GetTeachersByCourse(context.Background(), "CSE1321", PageOptions{})
	require.NoError(t, err)
	require.Len(t, teachers, 4)

	// Rating descending, missing rating last, id ascending on ties
	assert.Equal(t, []string{"t1", "t3", "t2", "t4"},
		[]string{teachers[0].ID, teachers[1].ID, teachers[2].ID, teachers[3].ID})
}

func TestGetTeachersByCourseOnlyNullRatings(t *testing.T) {
	store := &fakeTeacherStore{
		courseIDs: []string{"t2", "t1"},
		idRows: []models.TeacherRow{
			{TeacherID: "t2"},
			{TeacherID: "t1"},
		},
	}
	svc := NewTeacherService(store)

	teachers, err := svc.GetTeachersByCourse(context.Background(), "ENGL1101", PageOptions{})
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "t1", teachers[0].ID)
	assert.Equal(t, "t2", teachers[1].ID)
}

func TestGetTeachersByNameExactWins(t *testing.T) {
	store := &fakeTeacherStore{
		exactRows:  []models.TeacherSummaryRow{{TeacherID: "t1", Name: "Smith"}},
		prefixRows: []models.TeacherSummaryRow{{TeacherID: "t2", Name: "Smithson"}},
	}
	svc := NewTeacherService(store)

	summaries, err := svc.GetTeachersByName(context.Background(), "Smith", NameOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "t1", summaries[0].ID)
	assert.False(t, store.prefixCalled, "prefix tier must not run when exact matches exist")
}

func TestGetTeachersByNameFallsBackToPrefix(t *testing.T) {
	store := &fakeTeacherStore{
		prefixRows: []models.TeacherSummaryRow{
			{TeacherID: "t2", Name: "Smithson"},
			{TeacherID: "t3", Name: "Smythe"},
		},
	}
	svc := NewTeacherService(store)

	summaries, err := svc.GetTeachersByName(context.Background(), "Smi", NameOptions{})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.True(t, store.prefixCalled)
}

func TestGetTeachersByNameExactFlagNeverFallsBack(t *testing.T) {
	store := &fakeTeacherStore{
		prefixRows: []models.TeacherSummaryRow{{TeacherID: "t2", Name: "Smithson"}},
	}
	svc := NewTeacherService(store)

	summaries, err := svc.GetTeachersByName(context.Background(), "Smith", NameOptions{Exact: true})
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.False(t, store.prefixCalled, "exact mode must never run the prefix tier")
}

func TestGetTeachersByNameEmptyInput(t *testing.T) {
	svc := NewTeacherService(&fakeTeacherStore{})

	summaries, err := svc.GetTeachersByName(context.Background(), "", NameOptions{})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGetTeacherTags(t *testing.T) {
	store := &fakeTeacherStore{tagRows: []models.TagRow{
		{Tag: "Tough grader", N: 12},
		{Tag: "Caring", N: 7},
	}}
	svc := NewTeacherService(store)

	tags, err := svc.GetTeacherTags(context.Background(), "t1", PageOptions{})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	// Store ordering is preserved
	assert.Equal(t, "Tough grader", tags[0].Tag)
	assert.Equal(t, 12, tags[0].N)
	assert.Equal(t, 20, store.lastLimit)

	tags, err = svc.GetTeacherTags(context.Background(), "", PageOptions{})
	require.NoError(t, err)
	assert.Empty(t, tags)
}
