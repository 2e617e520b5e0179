package ids

// VariableID identifies a well-known variable.
type VariableID uint32

const (
	ServerServerArray                                VariableID = 2254
	ServerNamespaceArray                             VariableID = 2255
	ServerServerStatus                               VariableID = 2256
	ServerServerStatusStartTime                      VariableID = 2257
	ServerServerStatusCurrentTime                    VariableID = 2258
	ServerServerStatusState                          VariableID = 2259
	ServerServerStatusBuildInfo                      VariableID = 2260
	ServerServiceLevel                               VariableID = 2267
	ServerServerCapabilitiesServerProfileArray       VariableID = 2269
	ServerServerCapabilitiesLocaleIDArray            VariableID = 2271
	ServerServerCapabilitiesMinSupportedSampleRate   VariableID = 2272
	ServerServerCapabilitiesMaxBrowseContinuationPts VariableID = 2735
	ServerAuditing                                   VariableID = 2994
)

var variableTable = newTable("VariableID", []member[VariableID]{
	{ServerServerArray, "Server_ServerArray"},
	{ServerNamespaceArray, "Server_NamespaceArray"},
	{ServerServerStatus, "Server_ServerStatus"},
	{ServerServerStatusStartTime, "Server_ServerStatus_StartTime"},
	{ServerServerStatusCurrentTime, "Server_ServerStatus_CurrentTime"},
	{ServerServerStatusState, "Server_ServerStatus_State"},
	{ServerServerStatusBuildInfo, "Server_ServerStatus_BuildInfo"},
	{ServerServiceLevel, "Server_ServiceLevel"},
	{ServerServerCapabilitiesServerProfileArray, "Server_ServerCapabilities_ServerProfileArray"},
	{ServerServerCapabilitiesLocaleIDArray, "Server_ServerCapabilities_LocaleIdArray"},
	{ServerServerCapabilitiesMinSupportedSampleRate, "Server_ServerCapabilities_MinSupportedSampleRate"},
	{ServerServerCapabilitiesMaxBrowseContinuationPts, "Server_ServerCapabilities_MaxBrowseContinuationPoints"},
	{ServerAuditing, "Server_Auditing"},
})

// VariableIDFromUint32 maps v onto the variable catalogue.
func VariableIDFromUint32(v uint32) (VariableID, bool) { return variableTable.lookup(v) }

// ParseVariableID looks up a variable by its browse path name.
func ParseVariableID(name string) (VariableID, bool) { return variableTable.parse(name) }

func (id VariableID) Uint32() uint32 { return uint32(id) }

func (id VariableID) String() string { return variableTable.name(id) }
