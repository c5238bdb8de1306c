package repositories

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseadvisor/internal/pkg/apperrors"
)

func writeCatalog(t *testing.T, content string) *CourseCatalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewCourseCatalog(path)
}

func TestCatalogParsesHeaderFile(t *testing.T) {
	catalog := writeCatalog(t,
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"Computer Science B.S.,Data Structures,3306,12,4505\n"+
			"Computer Science B.S.,Programming I,3301,10,1321\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Computer Science B.S.", records[0].ProgramTitle)
	assert.Equal(t, "Data Structures", records[0].CourseName)
	assert.Equal(t, 3306.0, records[0].CatalogID)
	assert.Equal(t, 12.0, records[0].CoreID)
	assert.Equal(t, 4505.0, records[0].CourseID)
}

func TestCatalogToleratesHeaderlessFile(t *testing.T) {
	catalog := writeCatalog(t, "Mathematics B.S.,Calculus I,2101,5,1190\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mathematics B.S.", records[0].ProgramTitle)
}

func TestCatalogStripsBOMAndCRLF(t *testing.T) {
	catalog := writeCatalog(t,
		"\ufeffprogram_title,course_name,catalog_id,core_id,course_id\r\n"+
			"Physics B.S.,Mechanics,1201,3,2211\r\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Physics B.S.", records[0].ProgramTitle)
	assert.Equal(t, 2211.0, records[0].CourseID)
}

func TestCatalogSkipsShortLines(t *testing.T) {
	catalog := writeCatalog(t,
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"Only,Three,Fields\n"+
			"Biology B.S.,Genetics,4410,8,3300\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Biology B.S.", records[0].ProgramTitle)
}

func TestCatalogKeepsRowsWithBadNumbers(t *testing.T) {
	catalog := writeCatalog(t,
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"History B.A.,World History,not-a-number,2,1111\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, math.IsNaN(records[0].CatalogID))
	assert.Equal(t, 2.0, records[0].CoreID)
	assert.Equal(t, 1111.0, records[0].CourseID)
}

func TestCatalogDropsBlankLines(t *testing.T) {
	catalog := writeCatalog(t,
		"program_title,course_name,catalog_id,core_id,course_id\n\n"+
			"Art B.A.,Drawing,1101,1,1000\n\n\n")

	records, err := catalog.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCatalogLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"Computer Science B.S.,Data Structures,3306,12,4505\n"), 0o644))
	catalog := NewCourseCatalog(path)

	first, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Rewriting the backing file must not change the cached records.
	require.NoError(t, os.WriteFile(path, []byte(
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"A,B,1,2,3\nC,D,4,5,6\n"), 0o644))

	second, err := catalog.Load()
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, "Computer Science B.S.", second[0].ProgramTitle)
}

func TestCatalogMissingFile(t *testing.T) {
	catalog := NewCourseCatalog(filepath.Join(t.TempDir(), "missing.csv"))

	_, err := catalog.Load()
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotFound)

	_, err = catalog.ByProgram("Computer Science B.S.")
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotFound)
}

func TestCatalogByProgram(t *testing.T) {
	catalog := writeCatalog(t,
		"program_title,course_name,catalog_id,core_id,course_id\n"+
			"Computer Science B.S.,Data Structures,3306,12,4505\n"+
			"Computer Science B.S.,Programming I,3301,10,1321\n"+
			"Mathematics B.S.,Calculus I,2101,5,1190\n")

	matched, err := catalog.ByProgram("Computer Science B.S.")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// Surrounding whitespace on the filter is ignored
	matched, err = catalog.ByProgram("  Mathematics B.S. ")
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	// No filter returns the full catalog
	all, err := catalog.ByProgram("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Unknown program matches nothing
	none, err := catalog.ByProgram("Chemistry B.S.")
	require.NoError(t, err)
	assert.Empty(t, none)
}
