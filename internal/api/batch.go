package api

import (
	"context"
	"sync"
)

// DefaultUploadParallel bounds concurrent uploads when the caller does not
// choose a limit. Phone-camera images are a few MB each; three in flight
// keeps the pipe full without starving the poller.
const DefaultUploadParallel = 3

// UploadJob is one file in a batch upload.
type UploadJob struct {
	Path      string
	ImageType ImageType // user photos only; ignored for wardrobe uploads
}

// UploadOutcome is the per-file result of a batch upload. Exactly one of
// Image and Item is set on success, matching the kind of batch that ran.
type UploadOutcome struct {
	Job   UploadJob
	Image *UserImage
	Item  *WardrobeItem
	Err   error
}

// BatchProgressFunc receives progress for the job at the given index.
type BatchProgressFunc func(index int, sent, total int64)

// UploadImagesBatch uploads user photos with bounded concurrency. Results
// are returned in input order regardless of completion order; each file
// carries its own error rather than failing the whole batch. Cancelling ctx
// stops dispatch and marks unstarted jobs with the context error.
func (c *Client) UploadImagesBatch(ctx context.Context, jobs []UploadJob, parallel int, progress BatchProgressFunc) []UploadOutcome {
	return c.runBatch(ctx, jobs, parallel, func(ctx context.Context, index int, job UploadJob) UploadOutcome {
		image, err := c.UploadImage(ctx, job.Path, job.ImageType, batchItemProgress(progress, index))
		return UploadOutcome{Job: job, Image: image, Err: err}
	})
}

// UploadWardrobeBatch uploads wardrobe photos with bounded concurrency,
// with the same ordering and error semantics as UploadImagesBatch.
func (c *Client) UploadWardrobeBatch(ctx context.Context, jobs []UploadJob, parallel int, progress BatchProgressFunc) []UploadOutcome {
	return c.runBatch(ctx, jobs, parallel, func(ctx context.Context, index int, job UploadJob) UploadOutcome {
		item, err := c.UploadWardrobeImage(ctx, job.Path, batchItemProgress(progress, index))
		return UploadOutcome{Job: job, Item: item, Err: err}
	})
}

func batchItemProgress(progress BatchProgressFunc, index int) ProgressFunc {
	if progress == nil {
		return nil
	}
	return func(sent, total int64) { progress(index, sent, total) }
}

// runBatch executes one function per job through a bounded worker pool,
// writing each outcome into its input slot.
func (c *Client) runBatch(ctx context.Context, jobs []UploadJob, parallel int, run func(context.Context, int, UploadJob) UploadOutcome) []UploadOutcome {
	if parallel <= 0 {
		parallel = DefaultUploadParallel
	}
	outcomes := make([]UploadOutcome, len(jobs))

	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			outcomes[i] = UploadOutcome{Job: job, Err: err}
			continue
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			outcomes[i] = UploadOutcome{Job: job, Err: ctx.Err()}
			continue
		}
		wg.Add(1)
		go func(i int, job UploadJob) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = run(ctx, i, job)
		}(i, job)
	}
	wg.Wait()
	return outcomes
}
