package gps

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type staticSource struct {
	samples []models.PositionSample
	err     error
}

func (s staticSource) FetchPositions(context.Context) ([]models.PositionSample, error) {
	return s.samples, s.err
}

type recordingProcessor struct {
	calls  int
	source string
}

func (p *recordingProcessor) ProcessPositions(_ context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error) {
	p.calls++
	p.source = source
	return &models.PositionReport{Received: len(samples)}, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestPoll_ForwardsSamples(t *testing.T) {
	proc := &recordingProcessor{}
	src := staticSource{samples: []models.PositionSample{{EntityID: "van-1"}}}

	NewPoller(src, proc, 0, quietLogger()).Poll(context.Background())

	assert.Equal(t, 1, proc.calls)
	assert.Equal(t, SourceGPS, proc.source)
}

func TestPoll_FetchErrorSkipsProcessing(t *testing.T) {
	proc := &recordingProcessor{}
	src := staticSource{err: errors.New("vendor down")}

	NewPoller(src, proc, 0, quietLogger()).Poll(context.Background())

	assert.Equal(t, 0, proc.calls)
}

func TestPoll_EmptyBatchSkipsProcessing(t *testing.T) {
	proc := &recordingProcessor{}

	NewPoller(staticSource{}, proc, 0, quietLogger()).Poll(context.Background())

	assert.Equal(t, 0, proc.calls)
}
