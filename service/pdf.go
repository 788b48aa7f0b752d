package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"Donghwa/dao"
	"Donghwa/models"
	"Donghwa/pkg/response"
	"Donghwa/pkg/snowflake"
)

var _ IPdfService = (*PdfService)(nil)

type IPdfService interface {
	AttachPdf(ctx context.Context, taleID uint64, reader io.Reader) (*models.FairyTale, error)
}

// PdfService 浏览器打印出的 PDF 传 OSS，回填 pdf_url
type PdfService struct {
	FairyTaleDAO *dao.FairyTaleDAO
	Oss          IOssService
}

func (s *PdfService) AttachPdf(ctx context.Context, taleID uint64, reader io.Reader) (*models.FairyTale, error) {
	if !s.Oss.Enabled() {
		return nil, response.NewError(http.StatusServiceUnavailable, "PDF 저장소가 설정되지 않았습니다")
	}

	tale, err := s.FairyTaleDAO.GetByID(ctx, taleID)
	if err != nil {
		return nil, err
	}
	if tale == nil {
		return nil, response.NewError(http.StatusNotFound, "동화를 찾을 수 없습니다")
	}

	objectKey := fmt.Sprintf("fairytale/pdf/%s/%d.pdf",
		time.Now().Format("2006/01/02"), snowflake.GenID())
	if err := s.Oss.UploadReader(ctx, reader, objectKey); err != nil {
		return nil, err
	}

	pdfUrl := s.Oss.PublicURL(objectKey)
	if err := s.FairyTaleDAO.UpdatePdfUrl(ctx, taleID, pdfUrl); err != nil {
		return nil, err
	}
	tale.PdfUrl = &pdfUrl
	return tale, nil
}
