// internal/localstore/keys.go
package localstore

// Storage key namespace. Keys are deterministic strings formed by joining a
// fixed prefix with a role-qualified owner key or entity identity. No schema
// version tag is persisted: the local store is a disposable warm cache.
const (
	prefix = "agrimarket:"

	KeyMarketplace = prefix + "marketplace"
	KeyChat        = prefix + "chat:"           // + conversation id
	KeyProducts    = prefix + "products:"       // + owner key
	KeyOrders      = prefix + "orders:"         // + seller owner key
	KeyArticles    = prefix + "articles:owner:" // + author owner key
	KeyPendingQ    = prefix + "articles:pending-queue"
	KeyPublished   = prefix + "articles:published"
	KeyRevenue     = prefix + "revenue:"       // + owner key (counter)
	KeyLikes       = prefix + "likes:"         // + user owner key
	KeyUsers       = prefix + "users:"         // + owner key
	KeySettings    = prefix + "settings:"      // + owner key
	KeyNotifs      = prefix + "notifications:" // + owner key
	KeyDiscussions = prefix + "forum:discussions"
	KeyComments    = prefix + "forum:comments:" // + discussion id
	KeyRobotStatus = prefix + "robot:status:"   // + robot id
	KeyRobotActs   = prefix + "robot:activities:"
	KeyRobotLogs   = prefix + "robot:logs:"
)
