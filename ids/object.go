package ids

// ObjectID identifies a well-known object.
type ObjectID uint32

const (
	ModellingRuleMandatory ObjectID = 78
	ModellingRuleOptional  ObjectID = 80
	RootFolder             ObjectID = 84
	ObjectsFolder          ObjectID = 85
	TypesFolder            ObjectID = 86
	ViewsFolder            ObjectID = 87
	ObjectTypesFolder      ObjectID = 88
	VariableTypesFolder    ObjectID = 89
	DataTypesFolder        ObjectID = 90
	ReferenceTypesFolder   ObjectID = 91
	Server                 ObjectID = 2253
	ServerCapabilities     ObjectID = 2268
	ServerDiagnostics      ObjectID = 2274
	ServerVendorServerInfo ObjectID = 2295
	ServerServerRedundancy ObjectID = 2296
	ServerNamespaces       ObjectID = 11715
)

var objectTable = newTable("ObjectID", []member[ObjectID]{
	{ModellingRuleMandatory, "ModellingRule_Mandatory"},
	{ModellingRuleOptional, "ModellingRule_Optional"},
	{RootFolder, "RootFolder"},
	{ObjectsFolder, "ObjectsFolder"},
	{TypesFolder, "TypesFolder"},
	{ViewsFolder, "ViewsFolder"},
	{ObjectTypesFolder, "ObjectTypesFolder"},
	{VariableTypesFolder, "VariableTypesFolder"},
	{DataTypesFolder, "DataTypesFolder"},
	{ReferenceTypesFolder, "ReferenceTypesFolder"},
	{Server, "Server"},
	{ServerCapabilities, "Server_ServerCapabilities"},
	{ServerDiagnostics, "Server_ServerDiagnostics"},
	{ServerVendorServerInfo, "Server_VendorServerInfo"},
	{ServerServerRedundancy, "Server_ServerRedundancy"},
	{ServerNamespaces, "Server_Namespaces"},
})

// ObjectIDFromUint32 maps v onto the object catalogue.
func ObjectIDFromUint32(v uint32) (ObjectID, bool) { return objectTable.lookup(v) }

// ParseObjectID looks up an object by its browse name.
func ParseObjectID(name string) (ObjectID, bool) { return objectTable.parse(name) }

func (id ObjectID) Uint32() uint32 { return uint32(id) }

func (id ObjectID) String() string { return objectTable.name(id) }
