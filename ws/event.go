// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
//   - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
//   - Client: Her WebSocket bağlantısını temsil eder
//   - Event: Client-server arası iletilen mesaj formatı
//
// Event akışı:
//  1. Kullanıcı değerlendirme gönderir → HTTP POST → Service → Repository
//  2. Service, Hub'ın BroadcastToAll metodunu çağırır
//  3. Hub, event'i tüm bağlı client'lara (anonim olanlar dahil) iletir
//  4. Sink tanımlıysa event Kafka'ya da yazılır
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op: Event türü ("review_create", "heartbeat" vb.)
// Data: Event'e özgü payload
// Seq: Her outbound event'e verilen artan sayı. Client eksik event'i bununla fark eder.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client her 30sn'de gönderir
)

// Server → Client operasyonları
const (
	OpReady        = "ready"
	OpHeartbeatAck = "heartbeat_ack"

	OpReviewCreate = "review_create"
	OpReviewUpdate = "review_update" // moderasyon durumu değişti
	OpReviewDelete = "review_delete"

	OpCommentCreate = "comment_create"

	OpRestaurantCreate = "restaurant_create"
	OpRestaurantUpdate = "restaurant_update"
	OpRestaurantDelete = "restaurant_delete"

	OpBlogPostCreate = "blog_post_create"
	OpBlogPostUpdate = "blog_post_update"
	OpBlogPostDelete = "blog_post_delete"
)

// ReadyData, bağlantı kurulunca gönderilen ilk event'in payload'ı.
// Anonim client'lar için UserID üretilmiş bir kimliktir ve Anonymous true'dur.
type ReadyData struct {
	ClientID  string `json:"client_id"`
	UserID    string `json:"user_id,omitempty"`
	Anonymous bool   `json:"anonymous"`
}

// DeletedData, silme event'lerinin payload'ı.
type DeletedData struct {
	ID string `json:"id"`
}
