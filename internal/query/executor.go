package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/nautobot"
)

// DefaultMaxResponseBytes caps the serialized response size before the
// result is replaced with a size-limit error
const DefaultMaxResponseBytes = 50000

// Executor runs query definitions against the Nautobot backend. It owns the
// full pipeline: prompt parsing, field resolution, sanitizing, template
// rewriting, execution and response reshaping.
type Executor struct {
	client           nautobot.ClientInterface
	sanitizer        *Sanitizer
	log              *logger.Logger
	maxResponseBytes int
}

// NewExecutor creates an executor. maxResponseBytes <= 0 selects the default
// threshold.
func NewExecutor(client nautobot.ClientInterface, log *logger.Logger, maxResponseBytes int) *Executor {
	if maxResponseBytes <= 0 {
		maxResponseBytes = DefaultMaxResponseBytes
	}
	return &Executor{
		client:           client,
		sanitizer:        NewSanitizer(log),
		log:              log,
		maxResponseBytes: maxResponseBytes,
	}
}

// Result is the reshaped, bounded response returned for every successful
// query
type Result struct {
	Collection string
	Records    []interface{}
	QueryInfo  QueryInfo
}

// QueryInfo echoes the filter the result was produced with
type QueryInfo struct {
	FieldName   string   `json:"field_name"`
	FieldValues []string `json:"field_values"`
	ShowAll     bool     `json:"show_all"`
}

// ToMap renders the result in the wire shape handed to the tool transport
func (r *Result) ToMap() map[string]interface{} {
	return map[string]interface{}{
		r.Collection:  r.Records,
		"total_count": len(r.Records),
		"query_info":  r.QueryInfo,
	}
}

// Execute runs one definition with the given argument bag. Arguments may mix
// a free-text prompt with manual parameters; prompt-derived values never
// overwrite manual ones.
func (e *Executor) Execute(def *Definition, args map[string]interface{}) (*Result, error) {
	merged := mergePromptArgs(def, args)

	showAll := boolArg(merged, "show_all")
	fieldName := stringArg(merged, "variable_name")
	fieldValues := stringListArg(merged, "variable_value")

	spec := FilterSpec{ShowAll: showAll}
	variables := selectorFlags(merged)

	if !showAll {
		if fieldName == "" || len(fieldValues) == 0 {
			return nil, NewValidationError("Either 'prompt' or both 'variable_name' and 'variable_value' must be provided")
		}

		resolved, err := def.Fields.Resolve(fieldName)
		if err != nil {
			return nil, err
		}

		if !e.sanitizer.IsSafe(def.Entity, fieldValues) {
			return nil, NewValidationError("Invalid or unsafe filter value for %s query", def.Entity)
		}

		spec.Field = resolved
		base, _ := SplitLookupSuffix(resolved)
		switch {
		case IsCustomField(base):
			// Custom field filters are scalar on the backend; only the
			// first value survives.
			spec.VarType = VarString
			variables["variable_value"] = fieldValues[0]
		case def.IsBooleanField(resolved):
			spec.VarType = VarBoolean
			variables["variable_value"] = CoerceBoolean(fieldValues)
		default:
			variables["variable_value"] = fieldValues
		}
	}

	if err := e.resolveSubtreeFilter(def, merged, showAll, &spec, variables); err != nil {
		return nil, err
	}

	queryText, err := def.Template.Build(spec)
	if err != nil {
		return nil, err
	}

	e.log.Debug("Executing GraphQL query for %s: %s", def.Entity, queryText)
	e.log.Debug("With variables: %v", variables)

	response, err := e.client.GraphQLQuery(queryText, variables)
	if err != nil {
		return nil, NewBackendError("Query execution failed: %v", err)
	}

	if errs, ok := response["errors"]; ok && errs != nil {
		return nil, NewBackendError("GraphQL errors: %v", errs)
	}

	records := extractRecords(response, def.Template.Collection())

	if err := e.checkResponseSize(def, response, len(records)); err != nil {
		return nil, err
	}

	return &Result{
		Collection: def.Template.Collection(),
		Records:    records,
		QueryInfo: QueryInfo{
			FieldName:   spec.Field,
			FieldValues: fieldValues,
			ShowAll:     showAll,
		},
	}, nil
}

// resolveSubtreeFilter handles the optional nested filter (the device
// query's interface-level filter). When absent, the subtree's variables are
// dropped so the rewritten query declares no unused variables.
func (e *Executor) resolveSubtreeFilter(def *Definition, args map[string]interface{}, showAll bool, spec *FilterSpec, variables map[string]interface{}) error {
	if !def.Template.HasSubtree() {
		return nil
	}

	subField := stringArg(args, "interface_variable")
	subValues := stringListArg(args, "interface_value")

	if showAll || subField == "" || len(subValues) == 0 {
		for _, name := range def.SubtreeVars {
			delete(variables, name)
		}
		return nil
	}

	if !e.sanitizer.IsSafe("interface", subValues) {
		return NewValidationError("Invalid or unsafe interface filter value")
	}

	spec.SubField = subField
	variables["interface_var_value"] = subValues
	return nil
}

// checkResponseSize enforces the payload-size guard after the backend call
// returns
func (e *Executor) checkResponseSize(def *Definition, response map[string]interface{}, recordCount int) error {
	serialized, err := json.Marshal(response)
	if err != nil {
		return NewBackendError("Failed to serialize response: %v", err)
	}
	if len(serialized) > e.maxResponseBytes {
		return NewSizeLimitError(
			"Response too large (%d bytes, %d %s). Try requesting fewer fields or a narrower filter.",
			len(serialized), recordCount, def.Template.Collection())
	}
	return nil
}

// mergePromptArgs parses a prompt when present and fills in missing argument
// keys without overwriting manually supplied ones
func mergePromptArgs(def *Definition, args map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(args))
	for k, v := range args {
		merged[k] = v
	}

	prompt := stringArg(merged, "prompt")
	if prompt == "" || def.Parse == nil {
		return merged
	}

	for key, value := range def.Parse(prompt) {
		if existing, ok := merged[key]; !ok || existing == nil {
			merged[key] = value
		}
	}
	return merged
}

// selectorFlags copies the output selector flags (get_*) into the GraphQL
// variables map
func selectorFlags(args map[string]interface{}) map[string]interface{} {
	variables := make(map[string]interface{})
	for key, value := range args {
		if !strings.HasPrefix(key, "get_") {
			continue
		}
		if flag, ok := value.(bool); ok {
			variables[key] = flag
		}
	}
	return variables
}

// extractRecords pulls the collection's record list out of the GraphQL
// response envelope
func extractRecords(response map[string]interface{}, collection string) []interface{} {
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		return nil
	}
	records, ok := data[collection].([]interface{})
	if !ok {
		return nil
	}
	return records
}

// Argument bag helpers. The transport hands arguments through JSON, so
// values arrive as string, bool, []interface{} and float64.

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}

func stringListArg(args map[string]interface{}, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, fmt.Sprintf("%v", item))
		}
		return values
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
