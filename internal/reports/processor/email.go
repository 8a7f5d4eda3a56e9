package processor

import (
	"fmt"
	"html"
	"strings"
)

const weeklyReportSystemPrompt = `Ты создаешь еженедельный отчет для руководителя массажного салона о performance маркетинге.

ФОРМАТ ОТЧЕТА:
ЕЖЕНЕДЕЛЬНЫЙ ОТЧЕТ DEEPCALM

КЛЮЧЕВЫЕ МЕТРИКИ
[Краткие выводы по метрикам]

ТОП-КАМПАНИИ
[3 лучшие кампании с причинами успеха]

ТРЕБУЮТ ВНИМАНИЯ
[Кампании с проблемами и рекомендации]

РЕКОМЕНДАЦИИ НА СЛЕДУЮЩУЮ НЕДЕЛЮ
[3-5 конкретных действий]

ФИНАНСОВЫЕ ВЫВОДЫ
[ROI, бюджетные рекомендации]

СТИЛЬ:
- Деловой, но понятный
- Конкретные цифры и проценты
- Actionable рекомендации
- Фокус на ROI и прибыльности`

func buildWeeklyReportPrompt(data weeklyData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ДАННЫЕ ЗА НЕДЕЛЮ (%s - %s):\n\n",
		data.Period.StartDate.Format("2006-01-02"),
		data.Period.EndDate.Format("2006-01-02"))

	fmt.Fprintf(&b, "ОБЩИЕ МЕТРИКИ:\n")
	fmt.Fprintf(&b, "- Лиды: %d\n", data.Summary.TotalLeads)
	fmt.Fprintf(&b, "- Конверсии: %d\n", data.Summary.TotalConversions)
	fmt.Fprintf(&b, "- Конверсия: %g%%\n", data.Summary.ConversionRate)
	fmt.Fprintf(&b, "- Выручка: %.0f ₽\n", data.Summary.TotalRevenue)
	fmt.Fprintf(&b, "- Активные кампании: %d\n\n", data.Summary.ActiveCampaigns)

	b.WriteString("ТОП-3 КАМПАНИИ:")
	for i, campaign := range data.TopPerformers {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, campaign.Title, campaign.SKU)
		fmt.Fprintf(&b, "   - ROAS: %g (цель: %g)\n", campaign.ROAS, campaign.TargetROAS)
		fmt.Fprintf(&b, "   - CAC: %.0f ₽ (цель: %.0f ₽)\n", campaign.CAC, campaign.TargetCAC)
		fmt.Fprintf(&b, "   - Лиды: %d, Конверсии: %d\n", campaign.Leads, campaign.Conversions)
		fmt.Fprintf(&b, "   - Выручка: %.0f ₽", campaign.Revenue)
	}

	if len(data.NeedsAttention) > 0 {
		b.WriteString("\n\nПРОБЛЕМНЫЕ КАМПАНИИ:")
		limit := len(data.NeedsAttention)
		if limit > 3 {
			limit = 3
		}
		for _, campaign := range data.NeedsAttention[:limit] {
			fmt.Fprintf(&b, "\n- %s: ROAS %g (ниже цели %g)", campaign.Title, campaign.ROAS, campaign.TargetROAS)
		}
	}

	b.WriteString("\n\nСоздай comprehensive еженедельный отчет с анализом и рекомендациями.")
	return b.String()
}

// formatReportEmail renders the report as a simple HTML email body
func formatReportEmail(report WeeklyReport) string {
	var b strings.Builder

	b.WriteString("<h2>Еженедельный отчет DeepCalm</h2>")
	fmt.Fprintf(&b, "<p>Период: %s — %s</p>",
		report.Period.StartDate.Format("2006-01-02"),
		report.Period.EndDate.Format("2006-01-02"))

	b.WriteString("<h3>Ключевые метрики</h3><ul>")
	fmt.Fprintf(&b, "<li>Лиды: %d</li>", report.Summary.TotalLeads)
	fmt.Fprintf(&b, "<li>Конверсии: %d (CR: %g%%)</li>", report.Summary.TotalConversions, report.Summary.ConversionRate)
	fmt.Fprintf(&b, "<li>Выручка: %.0f ₽</li>", report.Summary.TotalRevenue)
	fmt.Fprintf(&b, "<li>Активные кампании: %d</li>", report.Summary.ActiveCampaigns)
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<pre>%s</pre>", html.EscapeString(report.AIAnalysis))

	b.WriteString("<h3>Топ-кампании</h3><ol>")
	for _, campaign := range report.TopPerformers {
		fmt.Fprintf(&b, "<li>%s (%s) — ROAS %g, CAC %.0f ₽, выручка %.0f ₽</li>",
			html.EscapeString(campaign.Title), campaign.SKU, campaign.ROAS, campaign.CAC, campaign.Revenue)
	}
	b.WriteString("</ol>")

	if len(report.NeedsAttention) > 0 {
		b.WriteString("<h3>Требуют внимания</h3><ul>")
		limit := len(report.NeedsAttention)
		if limit > 3 {
			limit = 3
		}
		for _, campaign := range report.NeedsAttention[:limit] {
			fmt.Fprintf(&b, "<li>%s: ROAS %g (цель: %g)</li>",
				html.EscapeString(campaign.Title), campaign.ROAS, campaign.TargetROAS)
		}
		b.WriteString("</ul>")
	}

	fmt.Fprintf(&b, "<p>Автоматический отчет DeepCalm · %s</p>", report.GeneratedAt.Format("02.01.2006 15:04"))
	return b.String()
}
