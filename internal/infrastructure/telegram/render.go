package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"somrates-bot/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// money renders a currency figure with thousands grouping, 2 decimals.
func money(v float64) string { return printer.Sprintf("%.2f", v) }

func amountText(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func coinList() string {
	coins := domain.Coins()
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func coinListUpper() string {
	coins := domain.Coins()
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = c.Upper()
	}
	return strings.Join(parts, ", ")
}

func StartText() string {
	return "👋 Привет! Я помогу рассчитать стоимость криптовалют в сомах.\n\n" +
		"Используй /help для получения списка команд."
}

func HelpText() string {
	return "🤖 **Криптовалютный калькулятор**\n\n" +
		"**Команды:**\n" +
		"/calc <монета> <количество> - рассчитать в сомах\n" +
		"/rates - показать текущие курсы\n" +
		"/help - показать эту справку\n\n" +
		"**Поддерживаемые монеты:**\n" +
		coinListUpper() + "\n\n" +
		"**Примеры:**\n" +
		"`/calc btc 0.001`\n" +
		"`/calc eth 0.5`\n" +
		"`/calc ltc 2`"
}

func UsageText() string {
	return "⚠️ Используй: /calc <монета> <количество>\n" +
		"Поддерживаемые монеты: " + coinList()
}

func LoadingText() string { return "🔄 Получаю актуальные курсы..." }

func BoardLoadingText() string { return "🔄 Загружаю курсы..." }

// ErrorText maps a conversion failure to its fixed user-facing message.
func ErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedCoin):
		return "⚠️ Поддерживаются только: " + coinList()
	case errors.Is(err, domain.ErrInvalidAmount):
		return "⚠️ Неверный формат суммы."
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return "⚠️ Количество должно быть положительным числом."
	case errors.Is(err, domain.ErrPriceUnavailable):
		return "🚫 Не удалось получить курс монеты."
	case errors.Is(err, domain.ErrRateUnavailable):
		return "🚫 Не удалось получить курс доллара к сому."
	default:
		return "🚫 Что-то пошло не так. Попробуй ещё раз."
	}
}

func ConversionText(c domain.Conversion) string {
	return fmt.Sprintf(
		"💰 **Обмен %s %s**\n\n"+
			"📊 Курс %s/USDT: `$%s`\n"+
			"💵 Стоимость в USDT: `$%s`\n"+
			"🇰🇬 Курс USD/KGS: `%.2f`\n\n"+
			"💸 **Итого: %s сом**",
		amountText(c.Amount), c.Coin.Upper(),
		c.Coin.Upper(), money(c.UnitPrice),
		money(c.USDValue),
		c.FxRate,
		money(c.TotalKGS),
	)
}

func BoardText(b domain.RateBoard) string {
	var sb strings.Builder
	sb.WriteString("📈 **Актуальные курсы криптовалют**\n\n")
	for _, r := range b.Coins {
		if r.Err != nil {
			sb.WriteString(r.Coin.Upper() + ": ❌ недоступно\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: `$%s`\n", r.Coin.Upper(), money(r.Price)))
	}
	if b.FxErr == nil {
		sb.WriteString(fmt.Sprintf("\n💵 USD/KGS: `%.2f`", b.FxRate))
	}
	return sb.String()
}
