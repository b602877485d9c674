package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Profiles() ProfileRepository
	Products() ProductRepository
	Carts() CartRepository
	Favorites() FavoriteRepository
	Orders() OrderRepository
	Messages() MessageRepository
	Events() EventRepository
}
