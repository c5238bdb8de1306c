package repositories

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"courseadvisor/internal/app/models"
	"courseadvisor/internal/pkg/apperrors"
	"courseadvisor/internal/pkg/logger"
)

// catalogHeader is the expected field sequence of the catalog file header.
var catalogHeader = []string{"program_title", "course_name", "catalog_id", "core_id", "course_id"}

// CourseCatalog loads the flat program/course catalog file and caches the
// parsed records for the process lifetime. The file is parsed at most once;
// a missing file is reported on every call and nothing is cached.
type CourseCatalog struct {
	path string

	mu      sync.Mutex
	loaded  bool
	records []models.CourseRecord
}

// NewCourseCatalog creates a CourseCatalog backed by the file at path.
func NewCourseCatalog(path string) *CourseCatalog {
	return &CourseCatalog{path: path}
}

// Load returns the cached records, parsing the backing file on first call.
func (c *CourseCatalog) Load() ([]models.CourseRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.records, nil
	}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCatalogNotFound, c.path)
		}
		return nil, fmt.Errorf("error reading course catalog: %w", err)
	}

	records, skipped := parseCatalog(string(raw))
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("path", c.path).Msg("Skipped malformed catalog lines")
	}
	logger.Info().Int("records", len(records)).Str("path", c.path).Msg("Course catalog loaded")

	c.records = records
	c.loaded = true
	return c.records, nil
}

// ByProgram returns the records whose program title matches the trimmed
// title exactly. An empty title returns the full catalog.
func (c *CourseCatalog) ByProgram(program string) ([]models.CourseRecord, error) {
	records, err := c.Load()
	if err != nil {
		return nil, err
	}

	program = strings.TrimSpace(program)
	if program == "" {
		return records, nil
	}

	var matched []models.CourseRecord
	for _, record := range records {
		if record.ProgramTitle == program {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// parseCatalog parses the raw catalog text. Lines are tolerated in LF or
// CRLF form, a leading BOM is stripped, blank lines are dropped, and a
// matching header line is skipped. Lines with fewer than five fields are
// discarded; trailing fields that fail numeric parsing become NaN.
func parseCatalog(raw string) (records []models.CourseRecord, skipped int) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimPrefix(line, "\ufeff")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return []models.CourseRecord{}, 0
	}

	start := 0
	if isCatalogHeader(lines[0]) {
		start = 1
	}

	records = make([]models.CourseRecord, 0, len(lines)-start)
	for _, line := range lines[start:] {
		parts := strings.Split(line, ",")
		if len(parts) < 5 {
			skipped++
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		records = append(records, models.CourseRecord{
			ProgramTitle: parts[0],
			CourseName:   parts[1],
			CatalogID:    toNum(parts[2]),
			CoreID:       toNum(parts[3]),
			CourseID:     toNum(parts[4]),
		})
	}

	return records, skipped
}

// isCatalogHeader reports whether the line matches the expected header,
// case-insensitively and tolerating spacing around the delimiter. Headerless
// files are accepted; their first line parses as data.
func isCatalogHeader(line string) bool {
	fields := strings.Split(line, ",")
	if len(fields) != len(catalogHeader) {
		return false
	}
	for i, field := range fields {
		if strings.ToLower(strings.TrimSpace(field)) != catalogHeader[i] {
			return false
		}
	}
	return true
}

func toNum(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
