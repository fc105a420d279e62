package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/classify"
	"imageorganizer/internal/config"
	"imageorganizer/internal/extract"
	"imageorganizer/internal/grouping"
	"imageorganizer/internal/logging"
	"imageorganizer/internal/services"
	"imageorganizer/internal/services/ocr"
)

// Source is one candidate file for a batch run. Bytes takes precedence when
// set; otherwise the payload is read from Path on demand.
type Source struct {
	Path  string
	Bytes []byte
}

// Name returns the source's base filename.
func (s Source) Name() string {
	return filepath.Base(s.Path)
}

func (s Source) payload() ([]byte, error) {
	if s.Bytes != nil {
		return s.Bytes, nil
	}
	return os.ReadFile(s.Path)
}

// Processor drives the per-image stages and the final grouping pass for one
// batch.
type Processor struct {
	cfg      *config.Config
	store    *batch.Store
	logger   *slog.Logger
	engine   ocr.Engine
	grouping *grouping.Engine
}

// NewProcessor constructs a batch processor.
func NewProcessor(cfg *config.Config, store *batch.Store, logger *slog.Logger, engine ocr.Engine) *Processor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Processor{
		cfg:      cfg,
		store:    store,
		logger:   logger.With(logging.String(logging.FieldComponent, "pipeline")),
		engine:   engine,
		grouping: grouping.NewEngine(logger),
	}
}

// Run processes the sources end to end and returns the final cluster
// partition. Per-image recognition failures are recorded on the image and do
// not fail the run; only store and context errors are fatal.
func (p *Processor) Run(ctx context.Context, sources []Source) (*grouping.Result, error) {
	admitted, err := p.admit(ctx, sources)
	if err != nil {
		return nil, err
	}

	parallelism := p.cfg.OCR.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, item := range admitted {
		g.Go(func() error {
			return p.processImage(gctx, item.image, item.source)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images, err := p.store.List(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "grouping", "list batch", "", err)
	}
	result := p.grouping.Group(images)
	p.logger.Info("batch grouped",
		logging.Int("images", len(images)),
		logging.Int("clusters", len(result.Clusters())))
	return result, nil
}

type admittedImage struct {
	image  *batch.Image
	source Source
}

// admit filters sources by the configured extension list, records each
// admitted image, and assigns its filename-derived role.
func (p *Processor) admit(ctx context.Context, sources []Source) ([]admittedImage, error) {
	admitted := make([]admittedImage, 0, len(sources))
	for _, src := range sources {
		name := src.Name()
		if !p.cfg.AllowedFile(name) {
			p.logger.Warn("skipping file with unsupported extension", logging.String("filename", name))
			continue
		}
		img, err := p.store.Add(ctx, name, src.Path)
		if err != nil {
			return nil, services.Wrap(services.ErrTransient, "ingest", "add image record", name, err)
		}
		role := classify.Classify(name)
		if err := p.store.SetRole(ctx, img.ID, role); err != nil {
			return nil, services.Wrap(services.ErrTransient, "classify", "assign role", name, err)
		}
		img.Role = role
		p.logger.Info("image classified",
			logging.String(logging.FieldImageID, img.ID),
			logging.String("filename", name),
			logging.String("role", role.Label()))
		admitted = append(admitted, admittedImage{image: img, source: src})
	}
	return admitted, nil
}

// processImage runs one image through processing to a terminal status. Only
// front-role images go through recognition and extraction.
func (p *Processor) processImage(ctx context.Context, img *batch.Image, src Source) error {
	ctx = services.WithImageID(ctx, img.ID)
	logger := logging.WithContext(ctx, p.logger).With(logging.String("filename", img.Filename))

	if err := p.store.Transition(ctx, img.ID, batch.StatusProcessing, ""); err != nil {
		return err
	}
	if img.Role != classify.RoleFront {
		return p.store.Transition(ctx, img.ID, batch.StatusCompleted, "")
	}

	payload, err := src.payload()
	if err != nil {
		failure := services.Wrap(services.ErrValidation, "ocr", "read image", img.Filename, err)
		logger.Warn("unreadable image; grouping by filename only", logging.Error(failure))
		return p.store.Transition(ctx, img.ID, batch.StatusFailed, failure.Error())
	}

	result, err := p.engine.Recognize(ctx, ocr.Input{
		Filename:  img.Filename,
		Image:     payload,
		Languages: p.cfg.OCR.Languages,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		failure := services.Wrap(services.ErrExternalTool, "ocr", p.engine.Name(), "recognition failed", err)
		logger.Warn("recognition failed; grouping by filename only", logging.Error(failure))
		return p.store.Transition(ctx, img.ID, batch.StatusFailed, failure.Error())
	}

	if err := p.store.SetOCRConfidence(ctx, img.ID, result.Confidence); err != nil {
		return err
	}
	if result.Confidence > 0 && result.Confidence < p.cfg.OCR.LowConfidenceWarn {
		logger.Warn("low recognition confidence",
			logging.Float64("confidence", result.Confidence),
			logging.Float64("threshold", p.cfg.OCR.LowConfidenceWarn))
	}

	if record := extract.Extract(result.Text); record != nil {
		if err := p.store.SetIdentity(ctx, img.ID, record); err != nil {
			return err
		}
		logger.Info("identity extracted",
			logging.String("first_name", record.FirstName),
			logging.String("last_name", record.LastName))
	} else {
		logger.Debug("no identity in recognized text")
	}

	return p.store.Transition(ctx, img.ID, batch.StatusCompleted, "")
}

// ScanDirectory lists regular files under dir as sources, in lexical order.
func ScanDirectory(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory: %w", err)
	}
	sources := make([]Source, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sources = append(sources, Source{Path: filepath.Join(dir, entry.Name())})
	}
	return sources, nil
}
