package bio

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tweetcraft-ai-api/internal/application/completion"
	"tweetcraft-ai-api/internal/domain/entity"
	"tweetcraft-ai-api/internal/domain/service"
	apperrors "tweetcraft-ai-api/pkg/errors"
	"tweetcraft-ai-api/pkg/logger"
	"tweetcraft-ai-api/pkg/metrics"
	"tweetcraft-ai-api/pkg/tracer"
)

// Completer 单次补全调用
type Completer interface {
	Complete(ctx context.Context, prompt string, params completion.GenerationParameters) (*completion.Completion, error)
}

// Picker 从 n 个候选中选出一个下标，n > 0
type Picker func(n int) int

// RandomPicker 均匀随机选择
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// Service 简介相关功能的编排层：校验输入、构建提示词、调用补全服务
type Service struct {
	completer Completer
	profile   completion.Profile
	listener  Listener
}

// NewService 创建简介服务，listener 为 nil 时不做通知
func NewService(completer Completer, profile completion.Profile, listener Listener) *Service {
	if listener == nil {
		listener = NopListener{}
	}
	return &Service{completer: completer, profile: profile, listener: listener}
}

// GenerateBios 生成最多 3 条简介
func (s *Service) GenerateBios(ctx context.Context, req entity.BioRequest) (*entity.BioSet, error) {
	ctx = service.WithWorkflow(ctx, service.WorkflowBioGenerate)
	ctx, span := tracer.Start(ctx, "bio.GenerateBios", trace.WithAttributes(
		attribute.String("bio.vibe", string(req.Vibe)),
		attribute.String("bio.length", string(req.Length)),
		attribute.Bool("bio.hashtags", req.IncludeHashtags),
		attribute.Bool("bio.emojis", req.IncludeEmojis),
	))
	defer span.End()

	req.Topic = strings.TrimSpace(req.Topic)
	if err := validateBioRequest(req); err != nil {
		return nil, s.fail(ctx, span, err)
	}

	prompt, err := BuildBioPrompt(req)
	if err != nil {
		return nil, s.fail(ctx, span, apperrors.Wrap(err, apperrors.CodeInternalError, "render bio prompt"))
	}
	res, err := s.completer.Complete(ctx, prompt, s.profile.Bio)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	bios := SplitBios(res.Text)
	metrics.BiosPerResponse.Observe(float64(len(bios)))
	if len(bios) == 0 {
		return nil, s.fail(ctx, span, apperrors.Service(errors.New("no bios returned")))
	}
	if len(bios) > entity.MaxBiosShown {
		bios = bios[:entity.MaxBiosShown]
	}

	set := &entity.BioSet{Bios: bios}
	span.SetAttributes(attribute.Int("bio.count", set.Len()))
	metrics.BioRequestsTotal.WithLabelValues(service.WorkflowBioGenerate, "ok").Inc()
	s.listener.OnBiosGenerated(ctx, set.Bios)
	return set, nil
}

// Tips 针对主题与语气给出简介优化建议
func (s *Service) Tips(ctx context.Context, topic string, vibe entity.Vibe) (string, error) {
	topic = strings.TrimSpace(topic)
	return s.single(ctx, service.WorkflowBioTips, func() (string, error) {
		if topic == "" {
			return "", apperrors.Validation("topic is required")
		}
		if !vibe.IsValid() {
			return "", apperrors.Validation("vibe %q is not supported", vibe)
		}
		return BuildTipsPrompt(topic, vibe)
	})
}

// Build 根据角色、成就与兴趣生成一条简介
func (s *Service) Build(ctx context.Context, role, achievement, interest string) (string, error) {
	role, achievement, interest = strings.TrimSpace(role), strings.TrimSpace(achievement), strings.TrimSpace(interest)
	return s.single(ctx, service.WorkflowBioBuild, func() (string, error) {
		if role == "" || achievement == "" || interest == "" {
			return "", apperrors.Validation("role, achievement and interest are required")
		}
		return BuildBuilderPrompt(role, achievement, interest)
	})
}

// Analyze 分析已有简介并给出改进建议
func (s *Service) Analyze(ctx context.Context, existingBio string) (string, error) {
	existingBio = strings.TrimSpace(existingBio)
	return s.single(ctx, service.WorkflowBioAnalyze, func() (string, error) {
		if existingBio == "" {
			return "", apperrors.Validation("bio is required")
		}
		if n := utf8.RuneCountInString(existingBio); n > entity.MaxBioLength {
			return "", apperrors.Validation("bio must be at most %d characters, got %d", entity.MaxBioLength, n)
		}
		return BuildAnalysisPrompt(existingBio)
	})
}

// Trends 返回指定分类的简介趋势
func (s *Service) Trends(ctx context.Context, category entity.TrendCategory) (string, error) {
	return s.single(ctx, service.WorkflowTrends, func() (string, error) {
		parsed, ok := entity.ParseTrendCategory(string(category))
		if !ok {
			return "", apperrors.Validation("category %q is not supported", category)
		}
		return BuildTrendPrompt(parsed)
	})
}

// Chat 将用户消息原样作为提示词发送
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	return s.single(ctx, service.WorkflowChat, func() (string, error) {
		if strings.TrimSpace(message) == "" {
			return "", apperrors.Validation("message is required")
		}
		return message, nil
	})
}

// Preview 构建社交主页预览
func Preview(topic string, bios []string, pick Picker) entity.SocialPreview {
	topic = strings.TrimSpace(topic)
	p := entity.SocialPreview{
		Name:   titleCase(topic) + " Enthusiast",
		Handle: "@" + strings.ToLower(strings.ReplaceAll(topic, " ", "")) + "_pro",
	}
	if len(bios) == 0 {
		return p
	}
	if pick == nil {
		pick = RandomPicker
	}
	i := pick(len(bios))
	if i < 0 || i >= len(bios) {
		i = 0
	}
	p.Bio = bios[i]
	return p
}

// single 校验并渲染提示词后，以对话参数完成一次调用，返回原始文本
func (s *Service) single(ctx context.Context, workflow string, build func() (string, error)) (string, error) {
	ctx = service.WithWorkflow(ctx, workflow)
	ctx, span := tracer.Start(ctx, "bio."+workflow)
	defer span.End()

	prompt, err := build()
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindValidation {
			err = apperrors.Wrap(err, apperrors.CodeInternalError, "render prompt")
		}
		return "", s.fail(ctx, span, err)
	}
	res, err := s.completer.Complete(ctx, prompt, s.profile.Chat)
	if err != nil {
		return "", s.fail(ctx, span, err)
	}
	metrics.BioRequestsTotal.WithLabelValues(workflow, "ok").Inc()
	return res.Text, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	kind := apperrors.KindOf(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.BioRequestsTotal.WithLabelValues(service.WorkflowFromContext(ctx), string(kind)).Inc()
	if kind == apperrors.KindValidation {
		logger.Debug(ctx, "rejected bio request", "workflow", service.WorkflowFromContext(ctx), "error", err.Error())
	} else {
		s.listener.OnError(ctx, ErrorMessage(err))
	}
	return err
}

func validateBioRequest(req entity.BioRequest) error {
	if req.Topic == "" {
		return apperrors.Validation("topic is required")
	}
	if strings.TrimSpace(string(req.Vibe)) == "" {
		return apperrors.Validation("vibe is required")
	}
	if !req.Vibe.IsValid() {
		return apperrors.Validation("vibe %q is not supported", req.Vibe)
	}
	if !req.Length.IsValid() {
		return apperrors.Validation("length %q is not supported", req.Length)
	}
	return nil
}

// ErrorMessage 面向用户的错误信息，底层原因与消息不同时附在后面
func ErrorMessage(err error) string {
	appErr := apperrors.AsAppError(err)
	if cause := appErr.Cause(); cause != "" && cause != appErr.Message {
		return appErr.Message + ": " + cause
	}
	return appErr.Message
}

// titleCase 每个单词首字母大写，其余小写
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
