package service

import (
	"Donghwa/pkg/llm"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UsageService), "*"),
	wire.Bind(new(IUsageService), new(*UsageService)),

	wire.Struct(new(StoryService), "*"),
	wire.Bind(new(IStoryService), new(*StoryService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(PdfService), "*"),
	wire.Bind(new(IPdfService), new(*PdfService)),

	llm.NewGenerator,
	wire.Bind(new(IStoryGenerator), new(*llm.Generator)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),
)
