package ordering

const (
	TopicAddonOrderPlaced  = "addon.order.placed"
	TopicDeliveryScheduled = "addon.delivery.scheduled"
)

// Partition key = order_id so every event for one order stays ordered.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
