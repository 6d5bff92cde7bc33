package usecase

import (
	"math"

	"github.com/inspection-map/internal/domain"
)

const (
	wheelSpinDurationMS    = 4000
	wheelMinFullRotations  = 5
	wheelExtraRotations    = 3
	wheelOffsetSegmentPart = 0.6

	slotTotalCards       = 35
	slotWinnerFromEnd    = 3
	slotBaseIntervalMS   = 40.0
	slotIntervalGrowthMS = 310.0
	slotSettleMS         = 600.0
)

// WheelPlan - как повернуть колесо, чтобы указатель остановился на победителе
type WheelPlan struct {
	Segments      int     `json:"segments"`
	SegmentAngle  float64 `json:"segment_angle"`
	TargetAngle   float64 `json:"target_angle"`
	FullRotations int     `json:"full_rotations"`
	StartRotation float64 `json:"start_rotation"`
	FinalRotation float64 `json:"final_rotation"`
	DurationMS    int     `json:"duration_ms"`
}

// SlotCard - карточка ленты слот-машины и момент её показа от начала вращения
type SlotCard struct {
	RestaurantID string  `json:"restaurant_id"`
	ShowAtMS     float64 `json:"show_at_ms"`
	Winner       bool    `json:"winner,omitempty"`
}

// SlotPlan - расписание ленты карточек
type SlotPlan struct {
	Cards        []SlotCard `json:"cards"`
	WinnerCard   int        `json:"winner_card"`
	CompleteAtMS float64    `json:"complete_at_ms"`
}

// SpinPlan - план анимации для клиента: нарисовать, прокрутить к победителю, сообщить о завершении
type SpinPlan struct {
	Mode        domain.SpinnerMode `json:"mode"`
	WinnerIndex int                `json:"winner_index"`
	Wheel       *WheelPlan         `json:"wheel,omitempty"`
	Slot        *SlotPlan          `json:"slot,omitempty"`
}

// WheelRenderer строит план анимации. Реализацию можно подменить.
type WheelRenderer interface {
	PlanWheel(segments, winnerIndex int, currentRotation float64) WheelPlan
	PlanSlot(poolIDs []string, winnerIndex int) SlotPlan
}

type defaultRenderer struct {
	rng RNG
}

// NewWheelRenderer возвращает стандартный планировщик анимации
func NewWheelRenderer(rng RNG) WheelRenderer {
	return &defaultRenderer{rng: rng}
}

// PlanWheel: указатель сверху, середина сегмента i находится на (i+0.5)*segment.
// Смещение в пределах ±30% сегмента, 5-7 полных оборотов.
func (r *defaultRenderer) PlanWheel(segments, winnerIndex int, currentRotation float64) WheelPlan {
	segment := 360.0 / float64(segments)
	offset := (r.rng.Float64() - 0.5) * segment * wheelOffsetSegmentPart
	target := (float64(winnerIndex)+0.5)*segment + offset
	rotations := wheelMinFullRotations + r.rng.IntN(wheelExtraRotations)

	return WheelPlan{
		Segments:      segments,
		SegmentAngle:  segment,
		TargetAngle:   target,
		FullRotations: rotations,
		StartRotation: currentRotation,
		FinalRotation: currentRotation + float64(rotations)*360 + (360 - target),
		DurationMS:    wheelSpinDurationMS,
	}
}

// PlanSlot: 35 карточек, победитель третий с конца, интервалы растут от 40 до ~350 мс
func (r *defaultRenderer) PlanSlot(poolIDs []string, winnerIndex int) SlotPlan {
	winnerCard := slotTotalCards - slotWinnerFromEnd
	cards := make([]SlotCard, slotTotalCards)

	elapsed := 0.0
	for i := 0; i < slotTotalCards; i++ {
		card := SlotCard{ShowAtMS: elapsed}
		if i == winnerCard {
			card.RestaurantID = poolIDs[winnerIndex]
			card.Winner = true
		} else {
			card.RestaurantID = poolIDs[r.rng.IntN(len(poolIDs))]
		}
		cards[i] = card

		progress := float64(i) / slotTotalCards
		elapsed += slotBaseIntervalMS + math.Pow(progress, 2)*slotIntervalGrowthMS
	}

	return SlotPlan{
		Cards:        cards,
		WinnerCard:   winnerCard,
		CompleteAtMS: elapsed + slotSettleMS,
	}
}
