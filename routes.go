package textsecure

import (
	"sort"
	"strconv"
	"strings"
)

// Route names a logical server operation. Its template is one of the
// *API constants.
type Route string

// Route Name Constants
const (
	RouteGeneral                Route = "general"
	RouteAccounts               Route = "accounts"
	RouteAttributes             Route = "attributes"
	RouteMessages               Route = "messages"
	RouteKeys                   Route = "keys"
	RouteSignedKeys             Route = "signed-keys"
	RouteDirectory              Route = "directory"
	RouteAttachments            Route = "attachments"
	RouteDeviceProvisioningCode Route = "device-provisioning-code"
	RouteDeviceProvisioning     Route = "device-provisioning"
	RouteDevices                Route = "devices"
)

// routeTemplates is populated once at package init and only read afterwards.
var routeTemplates = map[Route]string{
	RouteGeneral:                GeneralAPI,
	RouteAccounts:               AccountsAPI,
	RouteAttributes:             AttributesAPI,
	RouteMessages:               MessagesAPI,
	RouteKeys:                   KeysAPI,
	RouteSignedKeys:             SignedKeysAPI,
	RouteDirectory:              DirectoryAPI,
	RouteAttachments:            AttachmentsAPI,
	RouteDeviceProvisioningCode: DeviceProvisioningCodeAPI,
	RouteDeviceProvisioning:     DeviceProvisioningAPIFormat,
	RouteDevices:                DevicesAPIFormat,
}

// LookupRoute resolves an operation name to its Route.
func LookupRoute(name string) (Route, error) {
	r := Route(name)
	if _, ok := routeTemplates[r]; !ok {
		return "", NewRouteError(r, "lookup", ErrUnknownRoute)
	}
	return r, nil
}

// Routes returns every known route sorted by name. The slice is a copy and
// may be modified by the caller.
func Routes() []Route {
	routes := make([]Route, 0, len(routeTemplates))
	for r := range routeTemplates {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i] < routes[j] })
	return routes
}

// String returns the operation name.
func (r Route) String() string {
	return string(r)
}

// Template returns the raw path template of the route.
func (r Route) Template() (string, error) {
	tmpl, ok := routeTemplates[r]
	if !ok {
		return "", NewRouteError(r, "template", ErrUnknownRoute)
	}
	return tmpl, nil
}

// Arity returns how many arguments Format expects for the route, or -1 for
// an unknown route.
func (r Route) Arity() int {
	tmpl, ok := routeTemplates[r]
	if !ok {
		return -1
	}
	return strings.Count(tmpl, routePlaceholder)
}

// Format substitutes args into the route template.
//
// Substitution is literal: the argument replaces the placeholder byte for
// byte and nothing else in the template changes. The number of arguments
// must match Arity.
//
// Example:
//
//	path, err := RouteDevices.Format("7") // "v1/devices/7"
func (r Route) Format(args ...string) (string, error) {
	tmpl, ok := routeTemplates[r]
	if !ok {
		return "", NewRouteError(r, "format", ErrUnknownRoute)
	}

	arity := strings.Count(tmpl, routePlaceholder)
	if len(args) != arity {
		return "", NewRouteError(r, "format", ErrRouteArity)
	}
	if arity == 0 {
		return tmpl, nil
	}

	var b strings.Builder
	rest := tmpl
	for _, arg := range args {
		i := strings.Index(rest, routePlaceholder)
		b.WriteString(rest[:i])
		b.WriteString(arg)
		rest = rest[i+len(routePlaceholder):]
	}
	b.WriteString(rest)
	return b.String(), nil
}

// FormatRoute looks up the route by name and formats it.
func FormatRoute(name string, args ...string) (string, error) {
	r, err := LookupRoute(name)
	if err != nil {
		return "", err
	}
	return r.Format(args...)
}

// AccountAttributesPath returns the path used to update account attributes.
func AccountAttributesPath() string {
	return AccountsAPI + AttributesAPI
}

// AcknowledgeMessagePath returns the path that acknowledges delivery of the
// message sent by source at timestamp.
func AcknowledgeMessagePath(source string, timestamp uint64) string {
	return MessagesAPI + source + "/" + strconv.FormatUint(timestamp, 10)
}
