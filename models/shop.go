package models

type ShopInfo struct {
	Name        string     `json:"name"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Hours       ShopHours  `json:"hours"`
	Social      ShopSocial `json:"social"`
}

type ShopHours struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
}

type ShopSocial struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

type SpecialOffer struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	ValidUntil  string `json:"valid_until"`
	Code        string `json:"code"`
}

type Review struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
}
