package processor

import "fmt"

// Template sets keyed by catalog SKU. Real LLM generation is planned to
// replace these once the brandbook rules are machine-checkable; until then
// the generator cycles through fixed copy per SKU.
var titleTemplates = map[string][]string{
	"RELAX-60": {
		"Релакс массаж 60 минут — глубокое расслабление",
		"Час тишины и спокойствия — релакс массаж",
		"Классический массаж 60 минут — снимите напряжение",
	},
	"RELAX-90": {
		"Релакс массаж 90 минут — полное расслабление",
		"Полтора часа для себя — релакс массаж",
		"Максимальное расслабление за 90 минут",
	},
	"DEEP-90": {
		"Глубокий массаж 90 минут — проработка мышц",
		"Глубокая техника массажа — 90 минут",
		"Интенсивный массаж для спортсменов",
	},
	"THERAPY-60": {
		"Терапевтический массаж 60 минут",
		"Массаж для здоровья спины и шеи",
		"Лечебный массаж — 60 минут",
	},
}

var bodyTemplates = map[string][]string{
	"RELAX-60": {
		"Глубокое расслабление. Без боли. Тишина на час. Опытный мастер. Чистый кабинет в центре.",
		"Мягкие техники. Комфортная атмосфера. Час только для вас. Запись онлайн.",
		"Снимите стресс после рабочего дня. Авторские техники. Индивидуальный подход.",
	},
	"RELAX-90": {
		"Полтора часа глубокого расслабления. Мягкие техники. Тихая атмосфера. Опытный специалист.",
		"Максимальный релакс за 90 минут. Без боли и дискомфорта. Чистый кабинет.",
		"Забудьте о стрессе. Полное расслабление тела и разума. Комфортные условия.",
	},
	"DEEP-90": {
		"Глубокая проработка мышц. Для спортсменов и активных людей. 90 минут интенсива.",
		"Снимите мышечное напряжение. Глубокие техники. Восстановление после тренировок.",
		"Проработка триггерных точек. Эффективно и профессионально. 90 минут.",
	},
	"THERAPY-60": {
		"Терапевтический массаж для здоровья спины. Опытный специалист. 60 минут заботы.",
		"Лечебные техники для шеи и спины. Облегчение боли. Профессиональный подход.",
		"Восстановление после сидячей работы. Терапевтический массаж. Эффективно.",
	},
}

var ctaOptions = []string{
	"Записаться онлайн",
	"Узнать свободное время",
	"Забронировать сеанс",
}

var variantLabels = []string{"A", "B", "C", "D", "E"}

// GeneratedCreative is one generated ad variant before persistence
type GeneratedCreative struct {
	Variant string
	Title   string
	Body    string
	CTA     string
}

// generateVariants produces up to five copy variants for a SKU, cycling
// through the templates. Unknown SKUs get generic copy with the SKU
// substituted in.
func generateVariants(sku string, count int) []GeneratedCreative {
	if count < 1 {
		count = 1
	}
	if count > len(variantLabels) {
		count = len(variantLabels)
	}

	titles, ok := titleTemplates[sku]
	if !ok {
		titles = []string{
			fmt.Sprintf("%s — профессиональный массаж", sku),
			fmt.Sprintf("Массаж %s — опытный мастер", sku),
			fmt.Sprintf("%s — запись онлайн", sku),
		}
	}
	bodies, ok := bodyTemplates[sku]
	if !ok {
		bodies = []string{
			fmt.Sprintf("Профессиональный массаж %s. Опытный мастер. Чистый кабинет.", sku),
			fmt.Sprintf("Качественный массаж %s. Комфортная атмосфера. Запись онлайн.", sku),
			fmt.Sprintf("Авторские техники %s. Индивидуальный подход. Центр города.", sku),
		}
	}

	creatives := make([]GeneratedCreative, 0, count)
	for i := 0; i < count; i++ {
		creatives = append(creatives, GeneratedCreative{
			Variant: variantLabels[i],
			Title:   titles[i%len(titles)],
			Body:    bodies[i%len(bodies)],
			CTA:     ctaOptions[i%len(ctaOptions)],
		})
	}
	return creatives
}
