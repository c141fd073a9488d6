// Package upload publishes local files to a remote object store, one file at
// a time, and records the public URL of each in the upload ledger.
package upload

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/shub-dev/portfolio/internal/storage"
)

// Ledger records successful uploads.
type Ledger interface {
	RecordUpload(ctx context.Context, u storage.Upload) error
}

// Result is one successful upload.
type Result struct {
	Mapping
	URL  string
	Size int64
}

// Failure is one upload that did not go through.
type Failure struct {
	Mapping
	Err error
}

// Report summarizes a run.
type Report struct {
	Uploaded []Result
	Failed   []Failure
}

// Runner uploads mappings sequentially. A failing file is logged and skipped;
// it never aborts the rest of the batch, and nothing is retried.
type Runner struct {
	Store  Store
	Ledger Ledger
	Logger *zap.Logger
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// Run uploads every mapping in order.
func (r *Runner) Run(ctx context.Context, mappings []Mapping) Report {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var report Report
	for i, m := range mappings {
		if err := ctx.Err(); err != nil {
			for _, rest := range mappings[i:] {
				report.Failed = append(report.Failed, Failure{Mapping: rest, Err: err})
			}
			logger.Warn("Upload interrupted", zap.Int("remaining", len(mappings)-i), zap.Error(err))
			break
		}

		res, err := r.uploadOne(ctx, m)
		if err != nil {
			logger.Error("Failed to upload",
				zap.String("local", m.Local),
				zap.String("remote", m.Remote),
				zap.Error(err))
			report.Failed = append(report.Failed, Failure{Mapping: m, Err: err})
			continue
		}
		logger.Info("Uploaded",
			zap.String("remote", m.Remote),
			zap.String("url", res.URL),
			zap.String("size", humanize.Bytes(uint64(res.Size))))
		report.Uploaded = append(report.Uploaded, res)

		if r.Ledger == nil {
			continue
		}
		if err := r.Ledger.RecordUpload(ctx, storage.Upload{
			LocalPath:  m.Local,
			RemotePath: m.Remote,
			PublicURL:  res.URL,
			SizeBytes:  res.Size,
		}); err != nil {
			logger.Warn("Uploaded but not recorded in ledger", zap.String("local", m.Local), zap.Error(err))
		}
	}
	return report
}

func (r *Runner) uploadOne(ctx context.Context, m Mapping) (Result, error) {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	body, err := readFile(m.Local)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", m.Local, err)
	}
	if err := r.Store.Put(ctx, m.Remote, body, mimetype.Detect(body).String()); err != nil {
		return Result{}, err
	}
	url, err := r.Store.PublicURL(ctx, m.Remote)
	if err != nil {
		return Result{}, fmt.Errorf("resolve url for %s: %w", m.Remote, err)
	}
	return Result{Mapping: m, URL: url, Size: int64(len(body))}, nil
}
