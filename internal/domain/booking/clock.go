package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// ===============================
// Aritmética de horário (HH:MM ↔ minutos desde a meia-noite)
// ===============================

// ToMinutes converte "HH:MM" (24h) em minutos desde a meia-noite.
func ToMinutes(hm string) (int, error) {
	hh, mm, ok := strings.Cut(hm, ":")
	if !ok {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	return h*60 + m, nil
}

// ToTimeOfDay é a inversa de ToMinutes, sempre com zero à esquerda.
func ToTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
