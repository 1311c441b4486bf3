package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWorkHoursBody_Default(t *testing.T) {
	body, err := RenderWorkHoursBody("2024-06", "Jane Doe", nil)
	require.NoError(t, err)

	assert.Contains(t, body, "work hours for the month of 2024-06")
	assert.Contains(t, body, "do not hesitate to reach out")
	assert.Contains(t, body, "<p>Jane Doe</p>")
}

func TestRenderWorkHoursBody_CustomSummary(t *testing.T) {
	summary := "June was mostly spent on the billing migration."
	body, err := RenderWorkHoursBody("2024-06", "Jane Doe", &summary)
	require.NoError(t, err)

	assert.Contains(t, body, summary)
	assert.NotContains(t, body, "Please find attached my work hours")
	assert.Contains(t, body, "<p>Jane Doe</p>")
}

func TestRenderWorkHoursBody_EmptySummaryFallsBack(t *testing.T) {
	empty := ""
	body, err := RenderWorkHoursBody("2024-06", "Jane Doe", &empty)
	require.NoError(t, err)

	assert.Contains(t, body, "Please find attached my work hours")
}

func TestRenderWorkHoursBody_EscapesHTML(t *testing.T) {
	summary := `<script>alert("x")</script>`
	body, err := RenderWorkHoursBody("2024-06", "Jane Doe", &summary)
	require.NoError(t, err)

	assert.False(t, strings.Contains(body, "<script>"))
}
