package prices

import "github.com/osse101/HerbRun_Go/internal/domain"

// ItemPrice is the latest instant-buy (high) and instant-sell (low) trade of
// an item. Either side is nil when the item has not traded recently.
type ItemPrice struct {
	High     *int   `json:"high"`
	HighTime *int64 `json:"highTime"`
	Low      *int   `json:"low"`
	LowTime  *int64 `json:"lowTime"`
}

// Average is the mean of the high and low prices, or whichever one exists.
func (p ItemPrice) Average() domain.Price {
	switch {
	case p.High != nil && p.Low != nil:
		return domain.SomePrice((*p.High + *p.Low) / 2)
	case p.High != nil:
		return domain.SomePrice(*p.High)
	case p.Low != nil:
		return domain.SomePrice(*p.Low)
	default:
		return domain.NoPrice()
	}
}

// Item is an entry of the item mapping.
type Item struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Examine string `json:"examine"`
	Members bool   `json:"members"`
	Limit   int    `json:"limit"`
	Value   int    `json:"value"`
}

// Quote is an item together with its latest price.
type Quote struct {
	Item   Item         `json:"item"`
	Latest ItemPrice    `json:"latest"`
	Price  domain.Price `json:"price"`
}

type latestResponse struct {
	Data map[int]ItemPrice `json:"data"`
}
