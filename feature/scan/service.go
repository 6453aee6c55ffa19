package scan

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fridge-manager/core/barcode"
	"fridge-manager/core/history"
	"fridge-manager/core/imaging"
	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/vision"
)

// Service runs the scan pipeline.
type Service struct {
	detector   vision.Detector
	scanner    barcode.Scanner
	normalizer *Normalizer
	engine     *reconcile.Engine
	store      *pantry.Store
	archive    *Archive
	recorder   *history.Recorder
	logger     *zap.Logger
}

// NewService wires the pipeline. A nil archive disables frame archiving.
func NewService(detector vision.Detector, scanner barcode.Scanner, normalizer *Normalizer,
	engine *reconcile.Engine, store *pantry.Store, archive *Archive,
	recorder *history.Recorder, log *zap.Logger) *Service {
	return &Service{
		detector:   detector,
		scanner:    scanner,
		normalizer: normalizer,
		engine:     engine,
		store:      store,
		archive:    archive,
		recorder:   recorder,
		logger:     log,
	}
}

// Result is the response for one processed frame.
type Result struct {
	BatchID    string                 `json:"batch_id"`
	Observed   time.Time              `json:"observed"`
	Detections []vision.Detection     `json:"detections"`
	Barcodes   []barcode.Code         `json:"barcodes"`
	Changes    []reconcile.Change     `json:"changes"`
	Audit      []reconcile.AuditEntry `json:"audit"`
	Unresolved int                    `json:"unresolved"`
	ImageKey   string                 `json:"image_key,omitempty"`
	Inventory  pantry.Snapshot        `json:"inventory"`
}

// ProcessImage ingests one shelf photo: decode, detect and scan in
// parallel, reconcile, apply. Archive and scan log writes happen after the
// batch is safely applied and never fail the request.
func (s *Service) ProcessImage(ctx context.Context, data []byte) (*Result, error) {
	frame, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}

	observed := time.Now().UTC()

	var detections []vision.Detection
	var codes []barcode.Code

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detections, err = s.detector.Detect(gctx, frame)
		return err
	})
	g.Go(func() error {
		var err error
		codes, err = s.scanner.Scan(gctx, frame)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	observations := s.normalizer.Normalize(ctx, detections, codes, observed)
	plan := s.engine.Reconcile(observations)

	if err := s.store.Apply(ctx, plan); err != nil {
		return nil, err
	}

	l := logger.WithBatchID(s.logger, plan.BatchID)

	var imageKey string
	if s.archive != nil {
		key, err := s.archive.Store(ctx, plan.BatchID, frame, s.annotated(frame, detections, codes))
		if err != nil {
			l.Warn("frame archive failed", zap.Error(err))
		} else {
			imageKey = key
		}
	}

	if err := s.recorder.Record(ctx, plan, imageKey); err != nil {
		l.Warn("scan log write failed", zap.Error(err))
	}

	l.Info("frame processed",
		zap.Int("detections", len(detections)),
		zap.Int("barcodes", len(codes)),
		zap.Int("changes", len(plan.Changes)),
		zap.Int("unresolved", len(plan.ByOutcome(reconcile.OutcomeUnresolved))))

	return &Result{
		BatchID:    plan.BatchID,
		Observed:   plan.Observed,
		Detections: detections,
		Barcodes:   codes,
		Changes:    plan.Changes,
		Audit:      plan.Audit,
		Unresolved: len(plan.ByOutcome(reconcile.OutcomeUnresolved)),
		ImageKey:   imageKey,
		Inventory:  s.store.Snapshot(),
	}, nil
}

// annotated renders the frame with every detection and barcode box drawn in.
func (s *Service) annotated(frame *imaging.Frame, detections []vision.Detection, codes []barcode.Code) []byte {
	boxes := make([]imaging.Box, 0, len(detections)+len(codes))
	for _, detection := range detections {
		boxes = append(boxes, detection.Box)
	}
	for _, code := range codes {
		boxes = append(boxes, code.Box)
	}

	data, err := imaging.EncodeJPEG(imaging.Annotate(frame.Image, boxes))
	if err != nil {
		s.logger.Warn("failed to render annotated frame", zap.Error(err))
		return nil
	}
	return data
}
