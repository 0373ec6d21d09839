package agileboot

// AddUniqueIDs returns a copy of routes in which every node, at every depth,
// has Meta.ID set to Name + Path. Order is preserved and the input is not modified.
//
// Menu trees are linked through these ids, so they are expected to be unique.
// Uniqueness holds only while name+path pairs are unique; it is not checked here.
// Use DuplicateRouteIDs to detect collisions.
func AddUniqueIDs(routes []RouteItem) []RouteItem {
	annotated := make([]RouteItem, len(routes))

	for i, route := range routes {
		route.Meta.ID = route.Name + route.Path

		if len(route.Children) > 0 {
			route.Children = AddUniqueIDs(route.Children)
		}

		annotated[i] = route
	}

	return annotated
}

// withUniqueIDs annotates the route payload of resp when there is one.
// A response without data is returned unchanged.
func withUniqueIDs(resp *AsyncRoutesResponse) *AsyncRoutesResponse {
	if resp != nil && resp.Data != nil {
		resp.Data = AddUniqueIDs(resp.Data)
	}

	return resp
}

// WalkRoutes calls fn for every node in depth-first pre-order.
// depth is 0 for the top-level routes.
func WalkRoutes(routes []RouteItem, fn func(route *RouteItem, depth int)) {
	walkRoutes(routes, 0, fn)
}

func walkRoutes(routes []RouteItem, depth int, fn func(route *RouteItem, depth int)) {
	for i := range routes {
		fn(&routes[i], depth)
		walkRoutes(routes[i].Children, depth+1, fn)
	}
}

// DuplicateRouteIDs returns the ids that occur more than once in an annotated tree,
// in the order they were first seen.
func DuplicateRouteIDs(routes []RouteItem) []string {
	var (
		counts     = make(map[string]int)
		duplicates []string
	)

	WalkRoutes(routes, func(route *RouteItem, _ int) {
		counts[route.Meta.ID]++

		if counts[route.Meta.ID] == 2 {
			duplicates = append(duplicates, route.Meta.ID)
		}
	})

	return duplicates
}
