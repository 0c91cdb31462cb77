package engine

import (
	"momentum/internal/storage"
)

// PurchaseReward spends points on a reward. Non-repeatable rewards can be
// bought once; underfunded purchases are rejected. This is the only path in
// the core that deducts from totalPoints.
func (s *Service) PurchaseReward(rewardID string) (*storage.Purchase, error) {
	reward := s.store.Reward(rewardID)
	if reward == nil {
		return nil, NotFoundError{Kind: "reward", ID: rewardID}
	}
	if s.store.UserStats().TotalPoints < reward.Cost {
		return nil, PurchaseError{Reason: "not enough points"}
	}
	if !reward.Repeatable {
		for _, past := range s.store.PurchaseHistory() {
			if past.RewardID == reward.ID {
				return nil, PurchaseError{Reason: "reward can only be purchased once"}
			}
		}
	}

	purchase := storage.Purchase{
		ID:                s.store.NewID(),
		RewardID:          reward.ID,
		RewardName:        reward.Name,
		RewardDescription: reward.Description,
		Cost:              reward.Cost,
		PurchaseDate:      s.now(),
	}
	err := s.store.Mutate(func(d *storage.Document) {
		d.UserStats.TotalPoints -= reward.Cost
		for i := range d.Rewards {
			if d.Rewards[i].ID == reward.ID {
				d.Rewards[i].Purchased = true
			}
		}
		d.PurchaseHistory = append(d.PurchaseHistory, purchase)
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
