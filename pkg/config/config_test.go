package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcademicPeriodValidate(t *testing.T) {
	valid := AcademicPeriodConfig{Semester: "2", SchoolYear: "2024-2025", CurriculumYear: "2023-2024"}
	assert.NoError(t, valid.Validate())

	cases := map[string]AcademicPeriodConfig{
		"empty":                  {},
		"semester word":          {Semester: "first", SchoolYear: "2024-2025", CurriculumYear: "2023-2024"},
		"semester negative":      {Semester: "-1", SchoolYear: "2024-2025", CurriculumYear: "2023-2024"},
		"school year single":     {Semester: "1", SchoolYear: "2024", CurriculumYear: "2023-2024"},
		"school year gap":        {Semester: "1", SchoolYear: "2024-2027", CurriculumYear: "2023-2024"},
		"school year words":      {Semester: "1", SchoolYear: "now-later", CurriculumYear: "2023-2024"},
		"missing curriculum":     {Semester: "1", SchoolYear: "2024-2025"},
		"whitespace curriculums": {Semester: "1", SchoolYear: "2024-2025", CurriculumYear: "   "},
	}
	for name, cfg := range cases {
		assert.Error(t, cfg.Validate(), name)
	}
}
