package crm

import "time"

// Уровни лояльности
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// Пороги уровней в баллах
const (
	SilverThreshold = 500
	GoldThreshold   = 2000
)

// Бонус за реферальный код
const ReferralBonus = 100

// Счет лояльности клиента
type LoyaltyProfile struct {
	CustomerID   string    `bson:"_id" json:"customer_id"`
	Points       int64     `bson:"points" json:"points"`        // баланс баллов, всегда >= 0
	Tier         string    `bson:"tier" json:"tier"`            // уровень, производный от баллов
	ReferralCode string    `bson:"referral_code" json:"referral_code"`
	Version      int64     `bson:"version" json:"-"` // версия для optimistic lock
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Уровень по количеству баллов
func TierForPoints(points int64) string {
	switch {
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
