package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTemplateVariables(t *testing.T) {
	assert.Equal(t, []int{1, 2}, ExtractTemplateVariables("Hi {{1}}, your lesson for day {{2}} is ready."))
	assert.Equal(t, []int{1}, ExtractTemplateVariables("{{1}} and {{1}} again"))
	assert.Equal(t, []int{1, 3, 7}, ExtractTemplateVariables("{{7}} {{1}} {{3}}"))
	assert.Nil(t, ExtractTemplateVariables("no placeholders here"))
	assert.Nil(t, ExtractTemplateVariables("{{name}} is not positional"))
}

func TestJoinVariables(t *testing.T) {
	assert.Equal(t, "1,2,3", JoinVariables([]int{1, 2, 3}))
	assert.Equal(t, "", JoinVariables(nil))
}

func TestGenerateTempPassword(t *testing.T) {
	password := GenerateTempPassword(12)
	assert.Len(t, password, 12)
	assert.NotEqual(t, password, GenerateTempPassword(12))
}

func TestFindSampleCourse(t *testing.T) {
	course, found := FindSampleCourse("sample-onboarding-101")
	assert.True(t, found)
	assert.Equal(t, "New Hire Onboarding", course.Title)

	_, found = FindSampleCourse("nope")
	assert.False(t, found)
}
