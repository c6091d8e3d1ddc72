package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"inventory-manager/core/apperr"
	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/core/utils"
	"inventory-manager/core/validator"
	"inventory-manager/feature/inventory/csvio"
	"inventory-manager/feature/inventory/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles inventory operations.
type Service struct {
	store     *Store
	client    storage.Client
	storage   storage.Config
	validator validator.Validator
	logger    *zap.Logger
}

// NewService creates a new inventory service.
// client may be nil, in which case backups stay local and object imports fail.
func NewService(store *Store, client storage.Client, storageCfg storage.Config, v validator.Validator, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		storage:   storageCfg,
		validator: v,
		logger:    logger,
	}
}

// RowResult describes what happened to a single CSV row.
type RowResult struct {
	Line    int               `json:"line"`
	Name    string            `json:"name,omitempty"`
	Outcome reconcile.Outcome `json:"outcome,omitempty"`
	Err     error             `json:"-"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	RunID   string            `json:"run_id"`
	DryRun  bool              `json:"dry_run"`
	Summary reconcile.Summary `json:"summary"`
	Rows    []RowResult       `json:"rows"`
}

// Import reads an inventory CSV and reconciles every row against the store.
// Rows that cannot be parsed are skipped and reported; store failures abort the run.
func (s *Service) Import(ctx context.Context, r io.Reader, opts reconcile.Options) (*ImportReport, error) {
	report := &ImportReport{
		RunID:  uuid.NewString(),
		DryRun: opts.DryRun,
	}
	log := logger.WithRunID(s.logger, report.RunID)
	engine := reconcile.NewEngine(s.store, opts)
	reader := csvio.NewReader(r)
	log.Info("Import started", zap.Bool("dry_run", engine.DryRun()))

	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !apperr.IsKind(err, apperr.KindParse) {
			return report, fmt.Errorf("failed to read csv: %w", err)
		}

		var candidate *models.Product
		if err == nil {
			candidate, err = s.parseRow(row)
		}
		if err != nil {
			log.Warn("Skipping row", zap.Int("line", row.Line), zap.Error(err))
			report.Summary.Skip()
			report.Rows = append(report.Rows, RowResult{Line: row.Line, Err: err})
			continue
		}

		decision, err := engine.Reconcile(ctx, candidate)
		if err != nil {
			return report, fmt.Errorf("line %d: %w", row.Line, err)
		}
		logDecision(log, decision, engine.DryRun())

		report.Summary.Add(decision.Outcome)
		report.Rows = append(report.Rows, RowResult{
			Line:    row.Line,
			Name:    candidate.Name,
			Outcome: decision.Outcome,
		})
	}

	sum := report.Summary
	log.Info("Import finished",
		zap.Int("total", sum.Total),
		zap.Int("inserted", sum.Inserted),
		zap.Int("updated", sum.Updated),
		zap.Int("stale", sum.Stale),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("skipped", sum.Skipped),
	)
	return report, nil
}

// ImportFile imports the CSV file at path.
func (s *Service) ImportFile(ctx context.Context, path string, opts reconcile.Options) (*ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return s.Import(ctx, f, opts)
}

// ImportObject imports a CSV stored in the configured bucket.
func (s *Service) ImportObject(ctx context.Context, objectName string, opts reconcile.Options) (*ImportReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not enabled")
	}

	obj, err := s.client.GetObject(ctx, s.storage.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	return s.Import(ctx, obj, opts)
}

// AddProduct reconciles a single manually entered product.
func (s *Service) AddProduct(ctx context.Context, p models.Product) (reconcile.Decision, error) {
	p.ID = 0
	p.Name = strings.TrimSpace(p.Name)
	p.DateUpdated = utils.DateOnly(p.DateUpdated)

	if err := s.validate(p); err != nil {
		return reconcile.Decision{}, err
	}

	decision, err := reconcile.NewEngine(s.store, reconcile.Options{}).Reconcile(ctx, &p)
	if err != nil {
		return reconcile.Decision{}, err
	}
	logDecision(s.logger, decision, false)
	return decision, nil
}

// ViewProduct returns the product with the given id.
func (s *Service) ViewProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.FindByID(ctx, id)
}

// ProductIDs returns the ids a user may pick from.
func (s *Service) ProductIDs(ctx context.Context) ([]uint, error) {
	return s.store.IDs(ctx)
}

// Export writes every stored product to w as CSV, ordered by id.
// It returns apperr.ErrEmptyStore without writing anything when the store is empty.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, apperr.ErrEmptyStore
	}

	cw := csvio.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range products {
		err := cw.Write(
			p.Name,
			utils.FormatPrice(p.PriceCents),
			fmt.Sprint(p.Quantity),
			utils.FormatDate(p.DateUpdated),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to write %q: %w", p.Name, err)
		}
	}
	if err := cw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}
	return len(products), nil
}

// Backup exports the inventory to path, replacing any previous file.
// When object storage is enabled the same bytes are uploaded under the backup prefix.
func (s *Service) Backup(ctx context.Context, path string) (int, error) {
	log := logger.WithRunID(s.logger, uuid.NewString())

	var buf bytes.Buffer
	n, err := s.Export(ctx, &buf)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write backup %s: %w", path, err)
	}
	log.Info("Backup written", zap.String("path", path), zap.Int("products", n))

	if s.client == nil || !s.storage.Enabled {
		return n, nil
	}

	if err := storage.EnsureBucket(ctx, s.client, s.storage.Bucket, s.storage.Region); err != nil {
		return n, err
	}

	object := storage.ObjectName(s.storage.BackupPrefix, filepath.Base(path))
	_, err = s.client.PutObject(ctx, s.storage.Bucket, object, bytes.NewReader(buf.Bytes()), int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return n, fmt.Errorf("failed to upload backup: %w", err)
	}
	log.Info("Backup uploaded", zap.String("bucket", s.storage.Bucket), zap.String("object", object))
	return n, nil
}

func (s *Service) parseRow(row csvio.Row) (*models.Product, error) {
	if err := csvio.CheckColumns(row); err != nil {
		return nil, err
	}

	price, err := utils.ParsePrice(row.Fields[1])
	if err != nil {
		return nil, err
	}
	quantity, err := utils.ParseQuantity(row.Fields[2])
	if err != nil {
		return nil, err
	}
	date, err := utils.ParseDate(row.Fields[3])
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:        strings.TrimSpace(row.Fields[0]),
		PriceCents:  price,
		Quantity:    quantity,
		DateUpdated: date,
	}
	if err := s.validate(*p); err != nil {
		return nil, err
	}
	return p, nil
}

// validate maps struct validation failures onto parse errors.
func (s *Service) validate(p models.Product) error {
	err := s.validator.Validate(p)
	if err == nil || !validator.IsValidationError(err) {
		return err
	}
	fe, ok := validator.FirstFieldError(err)
	if !ok {
		return apperr.NewParse("product", "is invalid").WrapParent(err)
	}
	return apperr.NewParse(strings.ToLower(fe.Field()), validator.ValidationErrorMessage(fe)).WrapParent(err)
}

func logDecision(l *zap.Logger, d reconcile.Decision, dryRun bool) {
	fields := []zap.Field{
		zap.String("name", d.Key),
		zap.String("outcome", string(d.Outcome)),
	}
	if dryRun {
		fields = append(fields, zap.Bool("dry_run", true))
	}
	if d.Outcome.Mutates() {
		l.Info(d.Outcome.Describe(), fields...)
		return
	}
	// Stale and duplicate candidates are expected during re-imports.
	l.Debug(d.Outcome.Describe(), fields...)
}
