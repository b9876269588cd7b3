package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

const embedColor = 0x5865F2

// interactionGateway: Responder가 사용하는 Discord API 표면.
// *discordgo.Session이 구현하며 테스트에서는 페이크로 대체한다.
type interactionGateway interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// InteractionResponder: 커맨드 계층의 확인/최종 응답을 Discord 인터랙션 응답으로 변환한다.
// Acknowledge는 지연 응답(작업 중 표시), Finalize는 응답 편집으로 매핑된다.
type InteractionResponder struct {
	gateway   interactionGateway
	formatter *adapter.ResponseFormatter
	logger    *slog.Logger

	mu       sync.Mutex
	inflight map[*domain.CommandContext]*discordgo.Interaction
}

// NewInteractionResponder: InteractionResponder 인스턴스를 생성합니다.
func NewInteractionResponder(gateway interactionGateway, formatter *adapter.ResponseFormatter, logger *slog.Logger) *InteractionResponder {
	if logger == nil {
		logger = slog.Default()
	}
	return &InteractionResponder{
		gateway:   gateway,
		formatter: formatter,
		logger:    logger,
		inflight:  make(map[*domain.CommandContext]*discordgo.Interaction),
	}
}

func (r *InteractionResponder) bind(cmdCtx *domain.CommandContext, interaction *discordgo.Interaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight[cmdCtx] = interaction
}

func (r *InteractionResponder) release(cmdCtx *domain.CommandContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, cmdCtx)
}

func (r *InteractionResponder) lookup(cmdCtx *domain.CommandContext) (*discordgo.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	interaction, ok := r.inflight[cmdCtx]
	if !ok {
		return nil, fmt.Errorf("no interaction bound to command context")
	}
	return interaction, nil
}

// Acknowledge: 지연 응답을 보내 사용자에게 작업 중임을 알린다.
// 이후 어댑터 호출이 얼마나 걸리든 인터랙션은 유효하게 유지된다.
func (r *InteractionResponder) Acknowledge(_ context.Context, cmdCtx *domain.CommandContext) error {
	interaction, err := r.lookup(cmdCtx)
	if err != nil {
		return err
	}

	if err := r.gateway.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		return fmt.Errorf("failed to defer interaction response: %w", err)
	}
	return nil
}

// Finalize: 지연 응답을 최종 결과로 편집한다.
// 실패 결과는 평문으로, 성공 결과는 임베드로 렌더링된다.
func (r *InteractionResponder) Finalize(_ context.Context, cmdCtx *domain.CommandContext, reply *domain.Reply) error {
	interaction, err := r.lookup(cmdCtx)
	if err != nil {
		return err
	}
	if reply == nil {
		return fmt.Errorf("reply is required")
	}

	edit := &discordgo.WebhookEdit{}
	if reply.Success {
		embed := r.buildEmbed(reply)
		edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	} else {
		content := reply.Text
		edit.Content = &content
	}

	if _, err := r.gateway.InteractionResponseEdit(interaction, edit); err != nil {
		return fmt.Errorf("failed to edit interaction response: %w", err)
	}
	return nil
}

func (r *InteractionResponder) buildEmbed(reply *domain.Reply) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       reply.Title,
		Description: reply.Description,
		Color:       embedColor,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if r.formatter != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: r.formatter.Footer()}
	}
	if reply.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: reply.ImageURL}
	}
	return embed
}
