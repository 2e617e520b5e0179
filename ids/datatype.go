package ids

// DataTypeID identifies a well-known data type.
type DataTypeID uint32

const (
	Boolean              DataTypeID = 1
	SByte                DataTypeID = 2
	Byte                 DataTypeID = 3
	Int16                DataTypeID = 4
	UInt16               DataTypeID = 5
	Int32                DataTypeID = 6
	UInt32               DataTypeID = 7
	Int64                DataTypeID = 8
	UInt64               DataTypeID = 9
	Float                DataTypeID = 10
	Double               DataTypeID = 11
	String               DataTypeID = 12
	DateTime             DataTypeID = 13
	GUID                 DataTypeID = 14
	ByteString           DataTypeID = 15
	XMLElement           DataTypeID = 16
	NodeID               DataTypeID = 17
	ExpandedNodeID       DataTypeID = 18
	StatusCode           DataTypeID = 19
	QualifiedName        DataTypeID = 20
	LocalizedText        DataTypeID = 21
	Structure            DataTypeID = 22
	DataValue            DataTypeID = 23
	BaseDataType         DataTypeID = 24
	DiagnosticInfo       DataTypeID = 25
	Number               DataTypeID = 26
	Integer              DataTypeID = 27
	UInteger             DataTypeID = 28
	Enumeration          DataTypeID = 29
	Image                DataTypeID = 30
	Decimal              DataTypeID = 50
	IDType               DataTypeID = 256
	NodeClass            DataTypeID = 257
	Duration             DataTypeID = 290
	UtcTime              DataTypeID = 294
	LocaleID             DataTypeID = 295
	BuildInfo            DataTypeID = 338
	ServerState          DataTypeID = 852
	ServerStatusDataType DataTypeID = 862
)

var dataTypeTable = newTable("DataTypeID", []member[DataTypeID]{
	{Boolean, "Boolean"},
	{SByte, "SByte"},
	{Byte, "Byte"},
	{Int16, "Int16"},
	{UInt16, "UInt16"},
	{Int32, "Int32"},
	{UInt32, "UInt32"},
	{Int64, "Int64"},
	{UInt64, "UInt64"},
	{Float, "Float"},
	{Double, "Double"},
	{String, "String"},
	{DateTime, "DateTime"},
	{GUID, "Guid"},
	{ByteString, "ByteString"},
	{XMLElement, "XmlElement"},
	{NodeID, "NodeId"},
	{ExpandedNodeID, "ExpandedNodeId"},
	{StatusCode, "StatusCode"},
	{QualifiedName, "QualifiedName"},
	{LocalizedText, "LocalizedText"},
	{Structure, "Structure"},
	{DataValue, "DataValue"},
	{BaseDataType, "BaseDataType"},
	{DiagnosticInfo, "DiagnosticInfo"},
	{Number, "Number"},
	{Integer, "Integer"},
	{UInteger, "UInteger"},
	{Enumeration, "Enumeration"},
	{Image, "Image"},
	{Decimal, "Decimal"},
	{IDType, "IdType"},
	{NodeClass, "NodeClass"},
	{Duration, "Duration"},
	{UtcTime, "UtcTime"},
	{LocaleID, "LocaleId"},
	{BuildInfo, "BuildInfo"},
	{ServerState, "ServerState"},
	{ServerStatusDataType, "ServerStatusDataType"},
})

// DataTypeIDFromUint32 maps v onto the data type catalogue.
func DataTypeIDFromUint32(v uint32) (DataTypeID, bool) { return dataTypeTable.lookup(v) }

// ParseDataTypeID looks up a data type by name.
func ParseDataTypeID(name string) (DataTypeID, bool) { return dataTypeTable.parse(name) }

func (id DataTypeID) Uint32() uint32 { return uint32(id) }

func (id DataTypeID) String() string { return dataTypeTable.name(id) }
