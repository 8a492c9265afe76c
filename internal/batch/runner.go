package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/mgpai22/subburn/internal/config"
	"github.com/mgpai22/subburn/internal/logging"
	"github.com/mgpai22/subburn/internal/subtitle"
	"github.com/mgpai22/subburn/internal/video"
)

type Status string

const (
	StatusPending Status = "pending" // checked, not yet burned
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// ErrValidation halts a strict batch when a subtitle has warnings
var ErrValidation = errors.New("subtitle validation failed")

// outcome of one job
type JobResult struct {
	Job      config.Job
	Status   Status
	Output   string
	Warnings map[string][]string // subtitle path -> reporter warnings
	Err      error
}

type Report struct {
	RunID   string
	Results []JobResult
}

func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// interface for the video step so the runner can be tested without ffmpeg
type Burner interface {
	Burn(ctx context.Context, job video.Job) (*video.BurnResult, error)
}

// abstraction over the subtitle engine entry points
type Corrector interface {
	Correct(path string) (*subtitle.Result, error)
}

// runs jobs one after another
type Runner struct {
	cfg       *config.Config
	burner    Burner
	corrector Corrector
	validate  func(path string) []string
	logger    *logging.Logger
}

func NewRunner(cfg *config.Config, burner Burner, logger *logging.Logger) *Runner {
	logger = logging.OrNop(logger)
	return &Runner{
		cfg:       cfg,
		burner:    burner,
		corrector: subtitle.NewCorrector(logger),
		validate:  subtitle.Validate,
		logger:    logger,
	}
}

// Run corrects and checks the subtitles of every job before the first video
// is encoded. A severe overlap, or a warning under StrictCheck, stops the
// batch at that point with nothing burned and is returned as is. Other job
// failures are recorded and the batch continues. Cancellation is checked
// between jobs only.
func (r *Runner) Run(ctx context.Context, jobs []config.Job) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	runLog := r.logger.With("run_id", report.RunID)
	logs := make([]*logging.Logger, 0, len(jobs))

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log := runLog.With("job", i+1, "video", filepath.Base(job.Video))
		logs = append(logs, log)

		result, err := r.prepareJob(job, log)
		report.Results = append(report.Results, result)
		if err != nil {
			if haltsBatch(err) {
				return report, err
			}
			log.Errorw("Job failed", "error", err)
		}
	}

	runLog.Infow("Subtitles checked, starting encodes",
		"ready", report.Count(StatusPending),
	)

	for i := range report.Results {
		result := &report.Results[i]
		if result.Status != StatusPending {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := r.burnJob(ctx, result, logs[i]); err != nil {
			logs[i].Errorw("Job failed", "error", err)
		}
	}

	return report, nil
}

func haltsBatch(err error) bool {
	var severe *subtitle.SevereOverlapError
	return errors.As(err, &severe) || errors.Is(err, ErrValidation)
}

// corrects and checks the job's tracks; a ready job comes back pending with
// the corrected paths substituted
func (r *Runner) prepareJob(job config.Job, log *logging.Logger) (JobResult, error) {
	result := JobResult{Job: job, Warnings: map[string][]string{}}

	if job.Korean == "" && job.English == "" {
		log.Warnw("No subtitle files for video, skipping")
		result.Status = StatusSkipped
		return result, nil
	}

	tracks := []*string{&job.Korean, &job.English}
	if r.cfg.FixOverlaps {
		for _, track := range tracks {
			if *track == "" {
				continue
			}
			res, err := r.corrector.Correct(*track)
			if err != nil {
				result.Status = StatusFailed
				result.Err = err
				return result, err
			}
			*track = res.Path
		}
	}

	for _, track := range tracks {
		if *track == "" {
			continue
		}
		warnings := r.validate(*track)
		if len(warnings) == 0 {
			continue
		}
		result.Warnings[*track] = warnings
		for _, w := range warnings {
			log.Warnw("Subtitle check", "file", filepath.Base(*track), "warning", w)
		}
		if r.cfg.StrictCheck {
			err := fmt.Errorf("%w: %s has %d warning(s)", ErrValidation, filepath.Base(*track), len(warnings))
			result.Status = StatusFailed
			result.Err = err
			return result, err
		}
	}

	result.Job = job
	result.Status = StatusPending
	return result, nil
}

func (r *Runner) burnJob(ctx context.Context, result *JobResult, log *logging.Logger) error {
	job := result.Job

	lock, ok, err := lockVideo(job.Video)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return err
	}
	if !ok {
		log.Warnw("Video is being processed by another subburn run, skipping")
		result.Status = StatusSkipped
		return nil
	}
	defer unlockVideo(lock, log)

	burned, err := r.burner.Burn(ctx, video.Job{
		Video:   job.Video,
		Korean:  job.Korean,
		English: job.English,
	})
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return err
	}

	log.Infow("Video processed",
		"output", filepath.Base(burned.Output),
		"encoder", burned.Encoder,
		"resolution", fmt.Sprintf("%dx%d", burned.Width, burned.Height),
	)

	result.Status = StatusOK
	result.Output = burned.Output
	return nil
}

// guards a video against concurrent burns from separate processes.
// The lock file is never removed.
func lockVideo(path string) (*flock.Flock, bool, error) {
	lock := flock.New(path + ".subburn.lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock for %s: %w", filepath.Base(path), err)
	}
	return lock, ok, nil
}

func unlockVideo(lock *flock.Flock, log *logging.Logger) {
	if err := lock.Unlock(); err != nil {
		log.Warnw("Failed to release video lock", "error", err)
	}
}
