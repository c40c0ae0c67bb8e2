package booking

import "iter"

// Intervalo semiaberto [Start, End) em minutos desde a meia-noite.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Overlaps(start, end int) bool {
	return start < iv.End && end > iv.Start
}

// Janela de atendimento e passo da grade, injetados via config.
type Window struct {
	StartMinutes int
	EndMinutes   int
	StepMinutes  int
}

// HasConflict aplica o teste de sobreposição semiaberta contra os
// intervalos já ocupados do profissional naquele dia.
func HasConflict(busy []Interval, startMinutes, durationMinutes int) bool {
	end := startMinutes + durationMinutes
	for _, iv := range busy {
		if iv.Overlaps(startMinutes, end) {
			return true
		}
	}
	return false
}

// Slots enumera, em ordem crescente, os inícios candidatos na grade
// que cabem na janela e não sobrepõem nenhum intervalo ocupado.
// Sequência vazia significa agenda lotada, não erro.
func Slots(w Window, busy []Interval, durationMinutes int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if durationMinutes <= 0 || w.StepMinutes <= 0 {
			return
		}

		for t := w.StartMinutes; t+durationMinutes <= w.EndMinutes; t += w.StepMinutes {
			if HasConflict(busy, t, durationMinutes) {
				continue
			}
			if !yield(ToTimeOfDay(t)) {
				return
			}
		}
	}
}
