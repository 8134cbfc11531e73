package job_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/job"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/testutils"
)

func TestStartRejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	watcher := job.NewWatcher(
		&testutils.MockRunner{},
		&testutils.MockSender{},
		24*time.Hour,
		logger.NewNoOp(),
	)

	err := watcher.Start("not a cron spec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron spec")
}

func TestStartAcceptsDescriptorSpec(t *testing.T) {
	t.Parallel()

	watcher := job.NewWatcher(
		&testutils.MockRunner{},
		&testutils.MockSender{},
		24*time.Hour,
		logger.NewNoOp(),
	)

	require.NoError(t, watcher.Start("@hourly"))
	watcher.Stop()
}

func TestRunNowDiscoversAndNotifies(t *testing.T) {
	t.Parallel()

	articles := []domain.Article{
		domain.NewArticle("Example Blog", "Post", "https://example.com/post",
			time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)),
	}

	runner := &testutils.MockRunner{}
	runner.On("Run", mock.Anything, 24*time.Hour).Return(articles, nil)

	sender := &testutils.MockSender{}
	sender.On("Notify", mock.Anything, articles).Return(nil)

	watcher := job.NewWatcher(runner, sender, 24*time.Hour, logger.NewNoOp())
	watcher.RunNow()

	runner.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestRunNowSkipsNotifyWhenNothingFound(t *testing.T) {
	t.Parallel()

	runner := &testutils.MockRunner{}
	runner.On("Run", mock.Anything, 24*time.Hour).Return([]domain.Article{}, nil)

	sender := &testutils.MockSender{}

	watcher := job.NewWatcher(runner, sender, 24*time.Hour, logger.NewNoOp())
	watcher.RunNow()

	runner.AssertExpectations(t)
	sender.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestRunNowContainsRunFailure(t *testing.T) {
	t.Parallel()

	runner := &testutils.MockRunner{}
	runner.On("Run", mock.Anything, 24*time.Hour).
		Return(nil, assert.AnError)

	sender := &testutils.MockSender{}

	watcher := job.NewWatcher(runner, sender, 24*time.Hour, logger.NewNoOp())
	watcher.RunNow()

	sender.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
