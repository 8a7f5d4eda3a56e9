package processor

import (
	"fmt"
	"strings"
)

const analystSystemPrompt = `Ты — AI Analyst для DeepCalm, системы автоматизации performance маркетинга массажных салонов.

ТВОЯ РОЛЬ:
- Анализируешь эффективность рекламных кампаний
- Даешь конкретные рекомендации по оптимизации
- Фокусируешься на ROI и конверсионных метриках

КЛЮЧЕВЫЕ МЕТРИКИ:
- CAC (Customer Acquisition Cost) — стоимость привлечения клиента
- ROAS (Return on Ad Spend) — возврат на рекламные расходы
- CR (Conversion Rate) — процент конверсии лидов в клиентов
- LTV — lifetime value клиента массажного салона

КОНТЕКСТ МАССАЖНОГО БИЗНЕСА:
- Средний чек: 3000-5000 рублей
- Повторные визиты: 40-60% клиентов
- Сезонность: пики в праздники и стрессовые периоды
- Целевая аудитория: преимущественно женщины 25-45 лет

ФОРМАТ ОТВЕТА:
1. КРАТКИЙ ВЫВОД (1-2 предложения)
2. АНАЛИЗ МЕТРИК (CAC, ROAS, CR)
3. ПРОБЛЕМЫ (если есть)
4. РЕКОМЕНДАЦИИ (конкретные действия)
5. ПРОГНОЗ (ожидаемые результаты)

Будь конкретным, используй цифры, давай actionable советы.`

const analystChatSystemPrompt = `Ты — AI Analyst для DeepCalm. Отвечай на вопросы о performance маркетинге массажных салонов.

Будь конкретным, используй экспертизу в digital маркетинге, давай практические советы.
Если вопрос не связан с маркетингом — вежливо перенаправь на маркетинговую тему.`

func buildAnalysisPrompt(data campaignData, userQuestion *string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "АНАЛИЗ КАМПАНИИ: %s\n\n", data.Campaign.Title)
	fmt.Fprintf(&b, "ДАННЫЕ КАМПАНИИ:\n")
	fmt.Fprintf(&b, "- SKU: %s\n", data.Campaign.SKU)
	fmt.Fprintf(&b, "- Статус: %s\n", data.Campaign.Status)
	fmt.Fprintf(&b, "- Бюджет: %.0f руб\n", data.Campaign.BudgetRub)
	fmt.Fprintf(&b, "- Потрачено: %.0f руб\n", data.Metrics.TotalSpend)
	fmt.Fprintf(&b, "- Цель CAC: %.0f руб\n", data.Campaign.TargetCACRub)
	fmt.Fprintf(&b, "- Цель ROAS: %g\n\n", data.Campaign.TargetROAS)

	fmt.Fprintf(&b, "ТЕКУЩИЕ МЕТРИКИ (%d дней):\n", data.Metrics.PeriodDays)
	fmt.Fprintf(&b, "- Лиды: %d\n", data.Metrics.TotalLeads)
	fmt.Fprintf(&b, "- Конверсии: %d\n", data.Metrics.TotalConversions)
	fmt.Fprintf(&b, "- Конверсия: %g%%\n", data.Metrics.ConversionRate)
	fmt.Fprintf(&b, "- Выручка: %.0f руб\n", data.Metrics.TotalRevenue)
	fmt.Fprintf(&b, "- Факт ROAS: %g\n", data.Metrics.ROAS)
	fmt.Fprintf(&b, "- Факт CAC: %.0f руб\n", data.Metrics.CAC)
	fmt.Fprintf(&b, "- Минимальный порог ROAS: %g\n\n", data.MinROASThreshold)

	b.WriteString("КРЕАТИВЫ:\n")
	for _, creative := range data.Creatives {
		fmt.Fprintf(&b, "- %s: %s (статус: %s)\n", creative.Variant, creative.Title, creative.ModerationStatus)
	}

	if userQuestion != nil && *userQuestion != "" {
		fmt.Fprintf(&b, "\nВОПРОС ОТ ПОЛЬЗОВАТЕЛЯ: %s", *userQuestion)
	}

	b.WriteString("\nДай полный анализ и рекомендации по оптимизации этой кампании.")
	return b.String()
}
