// Package portfolio оценивает активы и обязательства и строит долгосрочный
// прогноз чистой стоимости капитала.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
)

// ErrUnknownCategory возвращается для актива с неизвестной категорией
var ErrUnknownCategory = errors.New("unknown asset category")

// Value возвращает текущую стоимость актива по правилу его категории.
// Незаполненные секции и поля считаются нулями.
func Value(a models.Asset) (float64, error) {
	switch a.Category {
	case models.CategoryStocks:
		return holdingValue(a.Stocks), nil
	case models.CategoryCrypto:
		return holdingValue(a.Crypto), nil
	case models.CategoryGold:
		if a.Gold == nil {
			return 0, nil
		}
		return a.Gold.WeightGrams * a.Gold.CurrentPricePerGram, nil
	case models.CategoryProperty:
		if a.Property == nil {
			return 0, nil
		}
		return a.Property.MarketValue * a.Property.OwnershipPercent / 100, nil
	case models.CategoryMutualFund:
		if a.MutualFund == nil {
			return 0, nil
		}
		return a.MutualFund.Value, nil
	case models.CategoryFD:
		if a.FD == nil {
			return 0, nil
		}
		return a.FD.Value, nil
	case models.CategoryOther:
		return plainValue(a.Other), nil
	case models.CategoryBankAccount:
		return plainValue(a.BankAccount), nil
	}
	return 0, fmt.Errorf("%w %q (asset %s)", ErrUnknownCategory, a.Category, a.ID)
}

// Invested возвращает вложенную в актив сумму (базу для расчёта прибыли)
func Invested(a models.Asset) (float64, error) {
	switch a.Category {
	case models.CategoryStocks:
		return holdingCost(a.Stocks), nil
	case models.CategoryCrypto:
		return holdingCost(a.Crypto), nil
	case models.CategoryGold:
		if a.Gold == nil {
			return 0, nil
		}
		return a.Gold.WeightGrams * a.Gold.BuyPricePerGram, nil
	case models.CategoryProperty:
		if a.Property == nil {
			return 0, nil
		}
		return a.Property.PurchasePrice * a.Property.OwnershipPercent / 100, nil
	case models.CategoryMutualFund:
		if a.MutualFund == nil {
			return 0, nil
		}
		return a.MutualFund.TotalInvested, nil
	case models.CategoryFD:
		if a.FD == nil {
			return 0, nil
		}
		return a.FD.Value, nil
	case models.CategoryOther:
		return plainValue(a.Other), nil
	case models.CategoryBankAccount:
		return plainValue(a.BankAccount), nil
	}
	return 0, fmt.Errorf("%w %q (asset %s)", ErrUnknownCategory, a.Category, a.ID)
}

func holdingValue(h *models.Holding) float64 {
	if h == nil {
		return 0
	}
	return h.Units * h.CurrentPrice
}

func holdingCost(h *models.Holding) float64 {
	if h == nil {
		return 0
	}
	return h.Units * h.BuyPrice
}

func plainValue(p *models.Plain) float64 {
	if p == nil {
		return 0
	}
	return p.Value
}

// TotalValue суммирует стоимость всех не проданных активов. Активы, которые
// не удалось оценить, пропускаются; их ошибки объединяются в err.
func TotalValue(assets []models.Asset) (float64, error) {
	return sum(assets, Value)
}

// TotalInvested суммирует вложения по всем не проданным активам
func TotalInvested(assets []models.Asset) (float64, error) {
	return sum(assets, Invested)
}

func sum(assets []models.Asset, fn func(models.Asset) (float64, error)) (float64, error) {
	total := 0.0
	var errs []error
	for _, a := range assets {
		if a.Liquidated {
			continue
		}
		v, err := fn(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total += v
	}
	return total, errors.Join(errs...)
}

// Allocation распределяет стоимость не проданных активов по категориям
func Allocation(assets []models.Asset) (map[models.Category]float64, error) {
	out := make(map[models.Category]float64)
	var errs []error
	for _, a := range assets {
		if a.Liquidated {
			continue
		}
		v, err := Value(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[a.Category] += v
	}
	return out, errors.Join(errs...)
}
