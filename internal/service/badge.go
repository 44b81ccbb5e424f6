package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/ClubCert/internal/constant"
	"github.com/SeakMengs/ClubCert/internal/fetcher"
	filestorage "github.com/SeakMengs/ClubCert/internal/file_storage"
	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/SeakMengs/ClubCert/pkg/badge"
	"go.uber.org/zap"
)

type BadgeRequest struct {
	QRCodeURL string
	ClubName  string
	LogoURL   string
}

type BadgeResult struct {
	FileName string `json:"fileName"`
	Bucket   string `json:"bucket"`
	// Presigned download link, empty when presigning is disabled or failed
	URL string `json:"url"`
}

type BadgeService interface {
	Generate(ctx context.Context, req BadgeRequest) (*BadgeResult, error)
}

// DocumentComposer opens a badge with the club name already laid out.
type DocumentComposer interface {
	Open(clubName string) (BadgeDocument, error)
}

type BadgeDocument interface {
	PlaceLogo(logo []byte) error
	PlaceQR(qr []byte) error
	Save() (string, error)
	Close() error
}

type badgeComposer struct {
	composer *badge.Composer
}

func NewBadgeComposer(c *badge.Composer) DocumentComposer {
	return &badgeComposer{composer: c}
}

func (c *badgeComposer) Open(clubName string) (BadgeDocument, error) {
	doc, err := c.composer.Open(clubName)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type BadgeServiceOptions struct {
	// Lifetime of the returned download link, 0 disables presigning
	PresignExpiry time.Duration
}

type badgeService struct {
	composer DocumentComposer
	fetcher  fetcher.Fetcher
	storage  filestorage.Storage
	metrics  *Metrics
	logger   *zap.SugaredLogger
	opts     BadgeServiceOptions
}

func NewBadgeService(composer DocumentComposer, f fetcher.Fetcher, s filestorage.Storage, metrics *Metrics, logger *zap.SugaredLogger, opts BadgeServiceOptions) BadgeService {
	return &badgeService{
		composer: composer,
		fetcher:  f,
		storage:  s,
		metrics:  metrics,
		logger:   logger,
		opts:     opts,
	}
}

// runStage times fn and prefixes its error with the stage name, e.g. "fetch logo: ...".
func (s *badgeService) runStage(stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.metrics.observeStage(stage, time.Since(start))

	if err != nil {
		return fmt.Errorf("%s: %w", strings.ReplaceAll(stage, "_", " "), err)
	}
	return nil
}

// Generate composes the badge for req and uploads it as <sanitized club name>.pdf.
// The local workspace is removed on every path.
func (s *badgeService) Generate(ctx context.Context, req BadgeRequest) (res *BadgeResult, err error) {
	fileName := util.ToBadgeObjectName(req.ClubName)
	log := s.logger.With("club", req.ClubName, "file", fileName)

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("badge generation panicked: %v", r)
		}
		s.metrics.countBadge(err)
		if err != nil {
			log.Errorw("Badge generation failed", "error", err)
		}
	}()

	var qr []byte
	if err := s.runStage(constant.StageGenerateQR, func() (err error) {
		qr, err = badge.GenerateQRCode(req.QRCodeURL)
		return err
	}); err != nil {
		return nil, err
	}

	var doc BadgeDocument
	if err := s.runStage(constant.StageOpenTemplate, func() (err error) {
		doc, err = s.composer.Open(req.ClubName)
		return err
	}); err != nil {
		return nil, err
	}
	defer doc.Close()

	var logo []byte
	if err := s.runStage(constant.StageFetchLogo, func() (err error) {
		logo, err = s.fetcher.Fetch(ctx, req.LogoURL)
		return err
	}); err != nil {
		return nil, err
	}

	if err := s.runStage(constant.StageLayoutLogo, func() error {
		return doc.PlaceLogo(logo)
	}); err != nil {
		return nil, err
	}

	if err := s.runStage(constant.StageLayoutQR, func() error {
		return doc.PlaceQR(qr)
	}); err != nil {
		return nil, err
	}

	var path string
	if err := s.runStage(constant.StageSerialize, func() (err error) {
		path, err = doc.Save()
		return err
	}); err != nil {
		return nil, err
	}

	var info filestorage.UploadInfo
	if err := s.runStage(constant.StageUpload, func() (err error) {
		info, err = s.storage.UploadFile(ctx, fileName, path, constant.BADGE_CONTENT_TYPE)
		return err
	}); err != nil {
		return nil, err
	}

	// the object is stored, a leftover workspace is not worth failing the request
	if err := s.runStage(constant.StageDeleteTmpFile, doc.Close); err != nil {
		log.Warnw("Failed to remove badge workspace", "error", err)
	}

	res = &BadgeResult{
		FileName: fileName,
		Bucket:   s.storage.Bucket(),
	}

	if s.opts.PresignExpiry > 0 {
		url, err := s.storage.PresignGet(ctx, fileName, s.opts.PresignExpiry)
		if err != nil {
			log.Warnw("Failed to presign badge URL", "error", err)
		} else {
			res.URL = url
		}
	}

	log.Infow("Badge uploaded", "bucket", res.Bucket, "etag", info.ETag, "size", info.Size)
	return res, nil
}
