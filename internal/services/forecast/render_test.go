package forecast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kma-forecast/internal/models"
)

func TestRender(t *testing.T) {
	report := &models.Report{
		Location:   "양주시",
		TargetTime: "0900",
		Fields: []models.Field{
			{Category: models.CategoryTemperature, Label: "기온", Value: "24°C"},
			{Category: models.CategorySky, Label: "하늘", Value: "맑음 ☀️"},
			{Category: models.CategoryProbability, Label: "강수확률", Value: "0%"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, Korean))

	assert.Equal(t, "양주시 09시 날씨 예보\n기온: 24°C\n하늘: 맑음 ☀️\n강수확률: 0%\n", buf.String())
}

func TestRender_NoInformation(t *testing.T) {
	report := &models.Report{Location: "양주시", TargetTime: "0100"}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, Korean))

	assert.Equal(t, "양주시 01시 날씨 예보\n해당 시간의 정보가 없습니다.\n", buf.String())
}

func TestRender_English(t *testing.T) {
	report := &models.Report{Location: "Seoul", TargetTime: "2300"}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, English))

	assert.Equal(t, "Seoul weather forecast for 23:00\nNo forecast information for that hour.\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRender_WriteError(t *testing.T) {
	report := &models.Report{Location: "양주시", TargetTime: "0900"}
	assert.Error(t, Render(failingWriter{}, report, Korean))
}
