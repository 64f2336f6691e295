package service

// Argument structs for every registered tool. The filter parameters are
// shared across the dynamic query tools; each entity adds its own output
// selector flags. Selector flags are pointers so an unset flag falls back to
// the default declared in the query template instead of forcing false.

// DeviceQueryArgs are the arguments of query_devices_dynamic
type DeviceQueryArgs struct {
	Prompt            string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show device router1' or 'devices with name contains router')"`
	VariableName      string   `json:"variable_name,omitempty" jsonschema:"description=Device property to filter by with optional lookup expression (e.g. 'name' or 'name__ic' or 'location')"`
	VariableValue     []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll           bool     `json:"show_all,omitempty" jsonschema:"description=Return all devices without filtering"`
	InterfaceVariable string   `json:"interface_variable,omitempty" jsonschema:"description=Optional interface property to filter the interfaces subtree by (e.g. 'name')"`
	InterfaceValue    []string `json:"interface_value,omitempty" jsonschema:"description=Optional interface value(s) to filter the interfaces subtree by"`

	GetAssetTag               *bool `json:"get_asset_tag,omitempty" jsonschema:"description=Include asset tag"`
	GetCustomFieldData        *bool `json:"get_custom_field_data,omitempty" jsonschema:"description=Include custom field data"`
	GetRawCustomFieldData     *bool `json:"get__custom_field_data,omitempty" jsonschema:"description=Include raw custom field data"`
	GetConfigContext          *bool `json:"get_config_context,omitempty" jsonschema:"description=Include config context"`
	GetDeviceBays             *bool `json:"get_device_bays,omitempty" jsonschema:"description=Include device bays"`
	GetDeviceType             *bool `json:"get_device_type,omitempty" jsonschema:"description=Include device type and manufacturer"`
	GetFace                   *bool `json:"get_face,omitempty" jsonschema:"description=Include rack face"`
	GetHostname               *bool `json:"get_hostname,omitempty" jsonschema:"description=Include hostname (default true)"`
	GetID                     *bool `json:"get_id,omitempty" jsonschema:"description=Include ids on every record"`
	GetDeviceID               *bool `json:"get_device_id,omitempty" jsonschema:"description=Include the device id"`
	GetInterfaces             *bool `json:"get_interfaces,omitempty" jsonschema:"description=Include the interfaces subtree"`
	GetLocalConfigContextData *bool `json:"get_local_config_context_data,omitempty" jsonschema:"description=Include local config context data"`
	GetLocation               *bool `json:"get_location,omitempty" jsonschema:"description=Include location"`
	GetLocationParent         *bool `json:"get_location_parent,omitempty" jsonschema:"description=Include the location's parent"`
	GetName                   *bool `json:"get_name,omitempty" jsonschema:"description=Include name"`
	GetParentBay              *bool `json:"get_parent_bay,omitempty" jsonschema:"description=Include parent bay"`
	GetPrimaryIP4             *bool `json:"get_primary_ip4,omitempty" jsonschema:"description=Include the primary IPv4 address"`
	GetPlatform               *bool `json:"get_platform,omitempty" jsonschema:"description=Include platform"`
	GetPosition               *bool `json:"get_position,omitempty" jsonschema:"description=Include rack position"`
	GetRack                   *bool `json:"get_rack,omitempty" jsonschema:"description=Include rack"`
	GetRole                   *bool `json:"get_role,omitempty" jsonschema:"description=Include role"`
	GetSerial                 *bool `json:"get_serial,omitempty" jsonschema:"description=Include serial number"`
	GetStatus                 *bool `json:"get_status,omitempty" jsonschema:"description=Include status"`
	GetTags                   *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags"`
	GetTenant                 *bool `json:"get_tenant,omitempty" jsonschema:"description=Include tenant"`
	GetVRFs                   *bool `json:"get_vrfs,omitempty" jsonschema:"description=Include VRFs"`
}

// InterfaceQueryArgs are the arguments of query_interfaces_dynamic
type InterfaceQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show all interfaces' or 'interfaces on device router1')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Interface property to filter by; common aliases are mapped automatically"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all interfaces without filtering"`

	GetID                        *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName                      *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetEnabled                   *bool `json:"get_enabled,omitempty" jsonschema:"description=Include enabled state"`
	GetLabel                     *bool `json:"get_label,omitempty" jsonschema:"description=Include label"`
	GetType                      *bool `json:"get_type,omitempty" jsonschema:"description=Include interface type"`
	GetStatus                    *bool `json:"get_status,omitempty" jsonschema:"description=Include status"`
	GetRole                      *bool `json:"get_role,omitempty" jsonschema:"description=Include role"`
	GetDescription               *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetDevice                    *bool `json:"get_device,omitempty" jsonschema:"description=Include the owning device"`
	GetTags                      *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags"`
	GetInterfaceRedundancyGroups *bool `json:"get_interface_redundancy_groups,omitempty" jsonschema:"description=Include redundancy groups"`
}

// IPAddressQueryArgs are the arguments of query_ipam_dynamic
type IPAddressQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show ip address 192.168.1.1')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=IP address property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all IP addresses without filtering"`

	GetAddress              *bool `json:"get_address,omitempty" jsonschema:"description=Include the address (default true)"`
	GetConfigContext        *bool `json:"get_config_context,omitempty" jsonschema:"description=Include config context of the primary device"`
	GetCustomFieldData      *bool `json:"get_custom_field_data,omitempty" jsonschema:"description=Include custom field data"`
	GetRawCustomFieldData   *bool `json:"get__custom_field_data,omitempty" jsonschema:"description=Include raw custom field data"`
	GetDescription          *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetDeviceType           *bool `json:"get_device_type,omitempty" jsonschema:"description=Include the primary device's type"`
	GetDNSName              *bool `json:"get_dns_name,omitempty" jsonschema:"description=Include DNS name"`
	GetHost                 *bool `json:"get_host,omitempty" jsonschema:"description=Include host value"`
	GetHostname             *bool `json:"get_hostname,omitempty" jsonschema:"description=Include the primary device's hostname"`
	GetID                   *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetInterfaces           *bool `json:"get_interfaces,omitempty" jsonschema:"description=Include assigned interfaces"`
	GetInterfaceAssignments *bool `json:"get_interface_assignments,omitempty" jsonschema:"description=Include interface assignments"`
	GetIPVersion            *bool `json:"get_ip_version,omitempty" jsonschema:"description=Include IP version"`
	GetLocation             *bool `json:"get_location,omitempty" jsonschema:"description=Include the primary device's location"`
	GetMaskLength           *bool `json:"get_mask_length,omitempty" jsonschema:"description=Include mask length"`
	GetName                 *bool `json:"get_name,omitempty" jsonschema:"description=Include the primary device's name"`
	GetParent               *bool `json:"get_parent,omitempty" jsonschema:"description=Include the parent prefix"`
	GetPlatform             *bool `json:"get_platform,omitempty" jsonschema:"description=Include the primary device's platform"`
	GetPrimaryIP4For        *bool `json:"get_primary_ip4_for,omitempty" jsonschema:"description=Include the devices this address is primary for"`
	GetPrimaryIP4           *bool `json:"get_primary_ip4,omitempty" jsonschema:"description=Include the primary device's primary IPv4"`
	GetRole                 *bool `json:"get_role,omitempty" jsonschema:"description=Include the primary device's role"`
	GetSerial               *bool `json:"get_serial,omitempty" jsonschema:"description=Include the primary device's serial"`
	GetStatus               *bool `json:"get_status,omitempty" jsonschema:"description=Include status"`
	GetTags                 *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags"`
	GetTenant               *bool `json:"get_tenant,omitempty" jsonschema:"description=Include tenant"`
	GetType                 *bool `json:"get_type,omitempty" jsonschema:"description=Include address type"`
}

// PrefixQueryArgs are the arguments of query_prefixes_dynamic
type PrefixQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show prefix 10.0.0.0/8' or 'prefixes within 172.16.0.0/12')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Prefix property to filter by (supports 'within' and 'within_include')"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all prefixes without filtering"`

	GetID              *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetPrefixLength    *bool `json:"get_prefix_length,omitempty" jsonschema:"description=Include prefix length (default true)"`
	GetIPVersion       *bool `json:"get_ip_version,omitempty" jsonschema:"description=Include IP version (default true)"`
	GetBroadcast       *bool `json:"get_broadcast,omitempty" jsonschema:"description=Include broadcast address (default true)"`
	GetDescription     *bool `json:"get_description,omitempty" jsonschema:"description=Include description (default true)"`
	GetParent          *bool `json:"get_parent,omitempty" jsonschema:"description=Include parent prefix (default true)"`
	GetStatus          *bool `json:"get_status,omitempty" jsonschema:"description=Include status (default true)"`
	GetNamespace       *bool `json:"get_namespace,omitempty" jsonschema:"description=Include namespace (default true)"`
	GetTags            *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags (default true)"`
	GetVLAN            *bool `json:"get_vlan,omitempty" jsonschema:"description=Include VLAN (default true)"`
	GetLocation        *bool `json:"get_location,omitempty" jsonschema:"description=Include location (default true)"`
	GetVRFAssignments  *bool `json:"get_vrf_assignments,omitempty" jsonschema:"description=Include VRF assignments (default true)"`
	GetCustomFieldData *bool `json:"get_custom_field_data,omitempty" jsonschema:"description=Include custom field data (default true)"`
}

// LocationQueryArgs are the arguments of query_locations_dynamic
type LocationQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show location datacenter1' or 'locations with status active')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Location property to filter by; aliases like site→name and region→parent are mapped automatically"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all locations without filtering"`

	GetID              *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName            *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetParent          *bool `json:"get_parent,omitempty" jsonschema:"description=Include parent location"`
	GetTags            *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags"`
	GetRacks           *bool `json:"get_racks,omitempty" jsonschema:"description=Include racks"`
	GetRackGroups      *bool `json:"get_rack_groups,omitempty" jsonschema:"description=Include rack groups"`
	GetContact         *bool `json:"get_contact,omitempty" jsonschema:"description=Include associated contacts"`
	GetVLANs           *bool `json:"get_vlans,omitempty" jsonschema:"description=Include VLANs"`
	GetStatus          *bool `json:"get_status,omitempty" jsonschema:"description=Include status"`
	GetTenant          *bool `json:"get_tenant,omitempty" jsonschema:"description=Include tenant"`
	GetPrefix          *bool `json:"get_prefix,omitempty" jsonschema:"description=Include prefix assignments"`
	GetLatitude        *bool `json:"get_latitude,omitempty" jsonschema:"description=Include latitude"`
	GetCreated         *bool `json:"get_created,omitempty" jsonschema:"description=Include creation timestamp"`
	GetCustomFieldData *bool `json:"get_custom_field_data,omitempty" jsonschema:"description=Include custom field data"`
	GetPhysicalAddress *bool `json:"get_physical_address,omitempty" jsonschema:"description=Include physical address"`
	GetShippingAddress *bool `json:"get_shipping_address,omitempty" jsonschema:"description=Include shipping address"`
}

// ManufacturerQueryArgs are the arguments of query_manufacturers_dynamic
type ManufacturerQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'manufacturers with name cisco')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Manufacturer property to filter by; aliases like vendor and brand map to name"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all manufacturers without filtering"`

	GetID          *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName        *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetDescription *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetDeviceTypes *bool `json:"get_device_types,omitempty" jsonschema:"description=Include the manufacturer's device types"`
}

// DeviceTypeQueryArgs are the arguments of query_device_types_dynamic
type DeviceTypeQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'device types with model c9300')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Device type property to filter by ('model' or 'manufacturer'; aliases mapped)"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all device types without filtering"`

	GetID           *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetModel        *bool `json:"get_model,omitempty" jsonschema:"description=Include model (default true)"`
	GetManufacturer *bool `json:"get_manufacturer,omitempty" jsonschema:"description=Include manufacturer"`
	GetDevices      *bool `json:"get_devices,omitempty" jsonschema:"description=Include devices of this type"`
}

// TagQueryArgs are the arguments of query_tags_dynamic
type TagQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'tags with name production')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Tag property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all tags without filtering"`

	GetID           *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName         *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetDescription  *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetContentTypes *bool `json:"get_content_types,omitempty" jsonschema:"description=Include content types"`
}

// NamespaceQueryArgs are the arguments of query_namespaces_dynamic
type NamespaceQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show namespace Global')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Namespace property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all namespaces without filtering"`

	GetID          *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetDescription *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetLocation    *bool `json:"get_location,omitempty" jsonschema:"description=Include location"`
	GetTags        *bool `json:"get_tags,omitempty" jsonschema:"description=Include tags"`
}

// SecretsGroupQueryArgs are the arguments of query_secrets_groups_dynamic
type SecretsGroupQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'show secrets group production')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Secrets group property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all secrets groups without filtering"`

	GetID          *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetDescription *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetSecrets     *bool `json:"get_secrets,omitempty" jsonschema:"description=Include the contained secrets"`
}

// RoleQueryArgs are the arguments of query_roles_dynamic
type RoleQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'roles with name firewall')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Role property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all roles without filtering"`

	GetID           *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName         *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetDescription  *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetContentTypes *bool `json:"get_content_types,omitempty" jsonschema:"description=Include content types (default true)"`
}

// StatusQueryArgs are the arguments of query_statuses_dynamic
type StatusQueryArgs struct {
	Prompt        string   `json:"prompt,omitempty" jsonschema:"description=Natural language query (e.g. 'statuses with name active')"`
	VariableName  string   `json:"variable_name,omitempty" jsonschema:"description=Status property to filter by"`
	VariableValue []string `json:"variable_value,omitempty" jsonschema:"description=Value(s) to filter by"`
	ShowAll       bool     `json:"show_all,omitempty" jsonschema:"description=Return all statuses without filtering"`

	GetID           *bool `json:"get_id,omitempty" jsonschema:"description=Include ids"`
	GetName         *bool `json:"get_name,omitempty" jsonschema:"description=Include name (default true)"`
	GetDescription  *bool `json:"get_description,omitempty" jsonschema:"description=Include description"`
	GetContentTypes *bool `json:"get_content_types,omitempty" jsonschema:"description=Include content types (default true)"`
}

// OnboardDeviceArgs are the arguments of onboard_device
type OnboardDeviceArgs struct {
	IPAddress                     string `json:"ip_address" jsonschema:"required,description=IP address of the device to onboard"`
	Location                      string `json:"location" jsonschema:"required,description=Name of the location the device belongs to"`
	SecretGroups                  string `json:"secret_groups" jsonschema:"required,description=Name of the secrets group used to authenticate against the device"`
	Role                          string `json:"role,omitempty" jsonschema:"description=Device role name (default network)"`
	Namespace                     string `json:"namespace,omitempty" jsonschema:"description=Namespace name (default Global)"`
	Status                        string `json:"status,omitempty" jsonschema:"description=Status applied to device plus interface plus IP address (default Active)"`
	Platform                      string `json:"platform,omitempty" jsonschema:"description=Platform name, or empty/'auto' for autodetection"`
	Port                          int    `json:"port,omitempty" jsonschema:"description=SSH port (default 22)"`
	Timeout                       int    `json:"timeout,omitempty" jsonschema:"description=Connection timeout in seconds (default 30)"`
	UpdateDevicesWithoutPrimaryIP bool   `json:"update_devices_without_primary_ip,omitempty" jsonschema:"description=Update existing devices that have no primary IP"`
}

// HelpFindQueryArgs are the arguments of help_find_query
type HelpFindQueryArgs struct {
	SearchIntent string `json:"search_intent" jsonschema:"required,description=What you are trying to find (e.g. 'devices' or 'ip addresses' or 'onboard a new device')"`
}

// RestFallbackArgs are the arguments of query_rest_api_fallback
type RestFallbackArgs struct {
	SearchDescription string `json:"search_description" jsonschema:"required,description=Description of the resource you are looking for (e.g. 'vlans' or 'circuit types')"`
	ResourceHint      string `json:"resource_hint,omitempty" jsonschema:"description=Direct REST path hint like 'circuits/circuit-types'"`
}

// CacheStatsArgs are the arguments of get_cache_stats
type CacheStatsArgs struct {
	RandomString string `json:"random_string,omitempty" jsonschema:"description=Dummy parameter for no-parameter tools"`
}

// QueryAnalyticsArgs are the arguments of get_query_analytics
type QueryAnalyticsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Number of recent tool calls to include (default 20)"`
}

// Prompt arguments

type OnboardingWorkflowArgs struct {
	// Dummy parameter for MCP framework compatibility
	Dummy string `json:"dummy,omitempty" jsonschema:"description=Dummy parameter for no-parameter prompts"`
}

type QueryDiscoveryArgs struct {
	// Dummy parameter for MCP framework compatibility
	Dummy string `json:"dummy,omitempty" jsonschema:"description=Dummy parameter for no-parameter prompts"`
}
