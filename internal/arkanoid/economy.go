package arkanoid

import "fmt"

// Shop prices and message display time.
const (
	costFreeze     = 10
	costMagnet     = 10
	costScoreMult  = 15
	costExtraLife  = 20
	costInvincible = 60

	messageDuration = 2.5
)

// wallet tracks spendable balance, cumulative earnings and the
// score-to-money conversion cursor. Conversion is monotonic: score that
// has been converted once is never converted again.
type wallet struct {
	Balance        int
	TotalEarned    int
	ScorePerDollar int

	converted int // score already exchanged for dollars

	Message      string
	messageTimer float64
}

func newWallet(scorePerDollar int) wallet {
	return wallet{ScorePerDollar: scorePerDollar}
}

// ConvertScore credits one dollar per ScorePerDollar points of newly
// earned score. Called every frame; the cursor guarantees no score is
// converted twice.
func (w *wallet) ConvertScore(score int) {
	if w.converted < 0 {
		w.converted = 0
	}
	if score <= w.converted {
		return
	}
	dollars := (score - w.converted) / w.ScorePerDollar
	if dollars > 0 {
		w.add(dollars)
		w.converted += dollars * w.ScorePerDollar
	}
}

// add credits the balance and total counters and posts a notice.
func (w *wallet) add(amount int) {
	if amount <= 0 {
		return
	}
	w.Balance += amount
	w.TotalEarned += amount
	w.post(fmt.Sprintf("Gained $%d", amount))
}

// TryPurchase deducts cost from the balance if affordable. Insufficient
// funds is a normal negative outcome: the balance is untouched and an
// insufficient-funds notice is posted.
func (w *wallet) TryPurchase(cost int) bool {
	if cost <= 0 {
		return false
	}
	if w.Balance < cost {
		w.post("Not enough $")
		return false
	}
	w.Balance -= cost
	w.post(fmt.Sprintf("Purchased for $%d!", cost))
	return true
}

func (w *wallet) post(msg string) {
	w.Message = msg
	w.messageTimer = messageDuration
}

// Tick counts the message timer down and clears the notice on expiry.
func (w *wallet) Tick(dt float64) {
	if w.Message == "" {
		return
	}
	w.messageTimer -= dt
	if w.messageTimer <= 0 {
		w.Message = ""
		w.messageTimer = 0
	}
}
