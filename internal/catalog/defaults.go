package catalog

// Default returns the built-in catalog of Kubernetes audit-event fields.
// Hosts usually start from this snapshot and replace it once facet data for
// the selected time range arrives.
func Default() *Catalog {
	return New([]Field{
		{
			Name:        "verb",
			Type:        TypeEnum,
			Description: "API verb of the request",
			Examples:    []string{`verb == "delete"`, `verb != "get"`},
			CommonValues: []string{
				`"get"`, `"list"`, `"watch"`, `"create"`,
				`"update"`, `"patch"`, `"delete"`,
			},
		},
		{
			Name:        "objectRef.namespace",
			Type:        TypeString,
			Description: "namespace of the object the request targets",
			Examples:    []string{`objectRef.namespace == "kube-system"`},
			CommonValues: []string{
				`"default"`, `"kube-system"`, `"kube-public"`,
			},
		},
		{
			Name:        "objectRef.resource",
			Type:        TypeEnum,
			Description: "resource kind the request targets",
			Examples:    []string{`objectRef.resource == "secrets"`},
			CommonValues: []string{
				`"pods"`, `"deployments"`, `"secrets"`, `"configmaps"`,
				`"services"`, `"namespaces"`, `"clusterroles"`,
			},
		},
		{
			Name:        "objectRef.name",
			Type:        TypeString,
			Description: "name of the object the request targets",
			Examples:    []string{`objectRef.name.startsWith("kube-")`},
		},
		{
			Name:        "user.username",
			Type:        TypeString,
			Description: "authenticated user that issued the request",
			Examples: []string{
				`user.username == "system:serviceaccount:kube-system:deployment-controller"`,
				`user.username.contains("serviceaccount")`,
			},
			CommonValues: []string{
				`"system:apiserver"`, `"system:kube-scheduler"`,
				`"system:kube-controller-manager"`,
			},
		},
		{
			Name:        "user.groups",
			Type:        TypeString,
			Description: "groups the authenticated user belongs to",
			Examples:    []string{`user.groups.contains("system:masters")`},
			CommonValues: []string{
				`"system:masters"`, `"system:authenticated"`,
				`"system:serviceaccounts"`,
			},
		},
		{
			Name:        "responseStatus.code",
			Type:        TypeNumber,
			Description: "HTTP status code of the API response",
			Examples:    []string{`responseStatus.code >= 400`},
			CommonValues: []string{
				"200", "201", "401", "403", "404", "409", "500",
			},
		},
		{
			Name:        "stage",
			Type:        TypeEnum,
			Description: "audit stage at which the event was generated",
			Examples:    []string{`stage == "ResponseComplete"`},
			CommonValues: []string{
				`"RequestReceived"`, `"ResponseStarted"`,
				`"ResponseComplete"`, `"Panic"`,
			},
		},
		{
			Name:        "level",
			Type:        TypeEnum,
			Description: "audit policy level the event was recorded at",
			Examples:    []string{`level == "RequestResponse"`},
			CommonValues: []string{
				`"Metadata"`, `"Request"`, `"RequestResponse"`,
			},
		},
		{
			Name:        "sourceIPs",
			Type:        TypeString,
			Description: "source addresses the request originated from",
			Examples:    []string{`sourceIPs.contains("10.0.")`},
		},
		{
			Name:        "requestURI",
			Type:        TypeString,
			Description: "request URI as sent by the client",
			Examples:    []string{`requestURI.startsWith("/apis/apps")`},
		},
		{
			Name:        "annotations.authorization.k8s.io/decision",
			Type:        TypeEnum,
			Description: "authorization decision recorded for the request",
			Examples:    []string{`annotations.authorization.k8s.io/decision == "forbid"`},
			CommonValues: []string{
				`"allow"`, `"forbid"`,
			},
		},
	})
}
