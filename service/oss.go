package service

import (
	"context"
	"fmt"
	"io"

	"Donghwa/config"
	ossclient "Donghwa/pkg/oss"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	Enabled() bool
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error
	PublicURL(objectKey string) string
}

type OssService struct {
	Client *oss.Client
	Config *config.OssConfig
}

func NewOssService(conf *config.Config) *OssService {
	s := &OssService{Config: conf.Oss}
	if !conf.Oss.Enabled() {
		return s
	}
	client, err := ossclient.GetOssClient(conf)
	if err != nil {
		return s
	}
	s.Client = client
	return s
}

func (s *OssService) Enabled() bool {
	return s.Client != nil && s.Config.Enabled()
}

func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

func (s *OssService) PublicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.Config.Bucket, s.Config.Endpoint, objectKey)
}
