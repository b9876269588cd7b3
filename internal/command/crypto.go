package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// CryptoCommand: 암호화폐 시세를 조회해 보여주는 명령어
type CryptoCommand struct {
	BaseCommand
}

// NewCryptoCommand: CryptoCommand 인스턴스를 생성합니다.
func NewCryptoCommand(deps *Dependencies) *CryptoCommand {
	return &CryptoCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('crypto')를 반환합니다.
func (c *CryptoCommand) Name() string {
	return domain.CommandCrypto.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *CryptoCommand) Description() string {
	return "Spot price for a crypto pair"
}

// Execute: 시세 API를 1회 호출하고 결과를 렌더링합니다.
// 심볼/통화가 비어 있으면 BTC/USDT 기본값을 적용한다.
func (c *CryptoCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	symbol, _ := params["symbol"].(string)
	if symbol == "" {
		symbol = constants.CryptoDefaults.Symbol
	}
	symbol = strings.ToUpper(symbol)

	currency, _ := params["currency"].(string)
	if currency == "" {
		currency = constants.CryptoDefaults.Currency
	}
	currency = strings.ToUpper(currency)

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		result := c.Deps().Prices.GetPrice(ctx, symbol, currency)
		c.logCompletion(c.Name(), cmdCtx, symbol+currency, result.Success)
		return c.Deps().Formatter.FormatCrypto(symbol, currency, result)
	})
}

func (c *CryptoCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Prices == nil {
		return fmt.Errorf("crypto command services not configured")
	}
	return nil
}
