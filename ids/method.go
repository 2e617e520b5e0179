package ids

// MethodID identifies a well-known method.
type MethodID uint32

const (
	ServerGetMonitoredItems        MethodID = 11492
	ServerSetSubscriptionDurable   MethodID = 12749
	ServerResendData               MethodID = 12873
	ServerRequestServerStateChange MethodID = 12886
)

var methodTable = newTable("MethodID", []member[MethodID]{
	{ServerGetMonitoredItems, "Server_GetMonitoredItems"},
	{ServerSetSubscriptionDurable, "Server_SetSubscriptionDurable"},
	{ServerResendData, "Server_ResendData"},
	{ServerRequestServerStateChange, "Server_RequestServerStateChange"},
})

// MethodIDFromUint32 maps v onto the method catalogue.
func MethodIDFromUint32(v uint32) (MethodID, bool) { return methodTable.lookup(v) }

// ParseMethodID looks up a method by name.
func ParseMethodID(name string) (MethodID, bool) { return methodTable.parse(name) }

func (id MethodID) Uint32() uint32 { return uint32(id) }

func (id MethodID) String() string { return methodTable.name(id) }
