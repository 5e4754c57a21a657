package models

import "github.com/google/uuid"

// Границы рейтинга безопасности
const (
	MinSafetyScore     = 0
	MaxSafetyScore     = 100
	DefaultSafetyScore = 100
)

// TouristSummary - краткие данные туриста для карточки инцидента
type TouristSummary struct {
	TouristID             uuid.UUID
	FullName              string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// TouristLookup - результат поиска туриста по ссылке из инцидента:
// либо найденная сводка, либо висячая ссылка.
type TouristLookup struct {
	summary TouristSummary
	found   bool
}

// FoundTourist оборачивает найденную сводку
func FoundTourist(summary TouristSummary) TouristLookup {
	return TouristLookup{summary: summary, found: true}
}

// DanglingTourist - ссылка на туриста, которого больше нет
func DanglingTourist() TouristLookup {
	return TouristLookup{}
}

// Get возвращает сводку и признак того, что турист найден
func (l TouristLookup) Get() (TouristSummary, bool) {
	return l.summary, l.found
}

// IsDangling сообщает, что турист по ссылке не найден
func (l TouristLookup) IsDangling() bool {
	return !l.found
}
