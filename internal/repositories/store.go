package repositories

// Store is the complete data-access contract of the marketplace.
type Store interface {
	UserRepository
	CategoryRepository
	ProductRepository
	CartRepository
	OrderRepository
	ReviewRepository
	WishlistRepository
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GORMStore)(nil)
)
