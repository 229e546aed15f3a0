package domain

// ServiceOffering услуга исполнителя, на которую оформляется бронирование
type ServiceOffering struct {
	ID         int64
	ProviderID int64 // ID профиля исполнителя
	Title      string
	Price      float64
}
