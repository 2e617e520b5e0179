package ids

// ReferenceTypeID identifies a well-known reference type.
type ReferenceTypeID uint32

const (
	References                 ReferenceTypeID = 31
	NonHierarchicalReferences  ReferenceTypeID = 32
	HierarchicalReferences     ReferenceTypeID = 33
	HasChild                   ReferenceTypeID = 34
	Organizes                  ReferenceTypeID = 35
	HasEventSource             ReferenceTypeID = 36
	HasModellingRule           ReferenceTypeID = 37
	HasEncoding                ReferenceTypeID = 38
	HasDescription             ReferenceTypeID = 39
	HasTypeDefinition          ReferenceTypeID = 40
	GeneratesEvent             ReferenceTypeID = 41
	Aggregates                 ReferenceTypeID = 44
	HasSubtype                 ReferenceTypeID = 45
	HasProperty                ReferenceTypeID = 46
	HasComponent               ReferenceTypeID = 47
	HasNotifier                ReferenceTypeID = 48
	HasOrderedComponent        ReferenceTypeID = 49
	FromState                  ReferenceTypeID = 51
	ToState                    ReferenceTypeID = 52
	HasCause                   ReferenceTypeID = 53
	HasEffect                  ReferenceTypeID = 54
	HasHistoricalConfiguration ReferenceTypeID = 56
	HasTrueSubState            ReferenceTypeID = 9004
	HasFalseSubState           ReferenceTypeID = 9005
	HasCondition               ReferenceTypeID = 9006
)

var referenceTable = newTable("ReferenceTypeID", []member[ReferenceTypeID]{
	{References, "References"},
	{NonHierarchicalReferences, "NonHierarchicalReferences"},
	{HierarchicalReferences, "HierarchicalReferences"},
	{HasChild, "HasChild"},
	{Organizes, "Organizes"},
	{HasEventSource, "HasEventSource"},
	{HasModellingRule, "HasModellingRule"},
	{HasEncoding, "HasEncoding"},
	{HasDescription, "HasDescription"},
	{HasTypeDefinition, "HasTypeDefinition"},
	{GeneratesEvent, "GeneratesEvent"},
	{Aggregates, "Aggregates"},
	{HasSubtype, "HasSubtype"},
	{HasProperty, "HasProperty"},
	{HasComponent, "HasComponent"},
	{HasNotifier, "HasNotifier"},
	{HasOrderedComponent, "HasOrderedComponent"},
	{FromState, "FromState"},
	{ToState, "ToState"},
	{HasCause, "HasCause"},
	{HasEffect, "HasEffect"},
	{HasHistoricalConfiguration, "HasHistoricalConfiguration"},
	{HasTrueSubState, "HasTrueSubState"},
	{HasFalseSubState, "HasFalseSubState"},
	{HasCondition, "HasCondition"},
})

// ReferenceTypeIDFromUint32 maps v onto the reference type catalogue.
func ReferenceTypeIDFromUint32(v uint32) (ReferenceTypeID, bool) { return referenceTable.lookup(v) }

// ParseReferenceTypeID looks up a reference type by name.
func ParseReferenceTypeID(name string) (ReferenceTypeID, bool) { return referenceTable.parse(name) }

func (id ReferenceTypeID) Uint32() uint32 { return uint32(id) }

func (id ReferenceTypeID) String() string { return referenceTable.name(id) }
