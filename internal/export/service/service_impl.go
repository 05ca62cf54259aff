package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jaipurwood/prodsheet/internal/export/domain"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("export.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, req domain.RecordRequest) (domain.ExportRecord, error) {
	kind := strings.TrimSpace(req.Kind)
	if kind != domain.KindOrder && kind != domain.KindQuotation {
		return domain.ExportRecord{}, domain.ErrInvalidKind
	}

	format := strings.TrimSpace(req.Format)
	if format != domain.FormatPDF && format != domain.FormatHTML {
		return domain.ExportRecord{}, domain.ErrInvalidFormat
	}

	refID, err := snowflake.ParseString(strings.TrimSpace(req.RefID))
	if err != nil || refID == 0 {
		return domain.ExportRecord{}, domain.ErrInvalidID
	}

	record := domain.ExportRecord{
		ID:        s.genID.Generate(),
		Kind:      kind,
		RefID:     refID,
		Format:    format,
		Filename:  strings.TrimSpace(req.Filename),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &record); err != nil {
		return domain.ExportRecord{}, err
	}

	s.log.Info("export recorded",
		zap.String("kind", record.Kind),
		zap.String("format", record.Format),
		zap.String("filename", record.Filename),
	)
	return record, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	records, err := s.repo.List(ctx, s.db, domain.ListFilter{Kind: strings.TrimSpace(req.Kind)}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(records, pageSize, func(r *domain.ExportRecord) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        r.ID.String(),
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(records) > pageSize {
		records = records[:pageSize]
	}

	out := make([]domain.ExportRecord, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		out = append(out, *record)
	}

	resp := domain.ListResponse{Records: out}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}
