package portfolio

import (
	"errors"
	"fmt"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrAssetNotFound возвращается, если актив с указанным ID отсутствует
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAlreadyLiquidated возвращается при повторной продаже актива
	ErrAlreadyLiquidated = errors.New("asset already liquidated")
)

// PrimaryBankAccount - имя счёта, создаваемого для зачисления выручки
const PrimaryBankAccount = "Primary Bank Account"

// Credit - зачисление выручки от продажи актива
type Credit struct {
	Amount float64
	// Account - счёт после зачисления
	Account models.Asset
}

// ConvertToCash продаёт актив по текущей оценке: сумма зачисляется на первый
// банковский счёт (он создаётся при отсутствии), а актив помечается проданным.
// Исходный срез не изменяется; возвращается новый срез и сведения о зачислении.
func ConvertToCash(assets []models.Asset, id string, now time.Time) ([]models.Asset, Credit, error) {
	idx := -1
	bank := -1
	for i, a := range assets {
		if a.ID == id {
			idx = i
		}
		if bank < 0 && a.Category == models.CategoryBankAccount && !a.Liquidated {
			bank = i
		}
	}
	if idx < 0 {
		return nil, Credit{}, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	asset := assets[idx]
	if asset.Liquidated {
		return nil, Credit{}, fmt.Errorf("%w: %s", ErrAlreadyLiquidated, id)
	}
	if asset.Category == models.CategoryBankAccount {
		return nil, Credit{}, fmt.Errorf("asset %s is already cash", id)
	}

	value, err := Value(asset)
	if err != nil {
		return nil, Credit{}, err
	}

	out := make([]models.Asset, len(assets), len(assets)+1)
	copy(out, assets)

	if bank < 0 {
		out = append(out, models.Asset{
			ID:          uuid.NewString(),
			Name:        PrimaryBankAccount,
			Category:    models.CategoryBankAccount,
			Active:      true,
			BankAccount: &models.Plain{},
		})
		bank = len(out) - 1
	}

	account := out[bank]
	balance := plainValue(account.BankAccount)
	details := models.Plain{Value: balance + value}
	if account.BankAccount != nil {
		details.Description = account.BankAccount.Description
	}
	account.BankAccount = &details
	out[bank] = account

	liquidatedAt := now
	asset.Liquidated = true
	asset.LiquidatedValue = value
	asset.LiquidatedAt = &liquidatedAt
	out[idx] = asset

	return out, Credit{Amount: value, Account: account}, nil
}
