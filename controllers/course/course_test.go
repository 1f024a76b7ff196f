package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/course/list", GetAllCourses)
	app.Get("/course/:id", GetCourseDetails)
	return app
}

// An unauthenticated caller gets the bundled sample catalog without any
// database or network access.
func TestGetAllCoursesUnauthenticated(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/course/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Status bool `json:"status"`
		Data   struct {
			Source  string `json:"source"`
			Courses []struct {
				ID string `json:"id"`
			} `json:"courses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.True(t, payload.Status)
	assert.Equal(t, SourceSample, payload.Data.Source)
	assert.NotEmpty(t, payload.Data.Courses)
}

func TestGetCourseDetailsUnauthenticatedSampleID(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/course/sample-onboarding-101", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Data struct {
			Source string `json:"source"`
			Course struct {
				ID    string `json:"id"`
				Title string `json:"title"`
				Days  []struct {
					DayNumber int `json:"day_number"`
				} `json:"days"`
			} `json:"course"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, SourceSample, payload.Data.Source)
	assert.Equal(t, "New Hire Onboarding", payload.Data.Course.Title)
	assert.NotEmpty(t, payload.Data.Course.Days)
}

func TestGetCourseDetailsUnknownSampleID(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/course/not-a-course", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCourseDetailsInvalidID(t *testing.T) {
	app := testApp()

	for _, id := range []string{"null", "undefined", "NaN"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/course/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}
