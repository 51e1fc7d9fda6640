package video

//Contains reports whether the position lies inside the zone, bounds inclusive
func (z GoalZone) Contains(p Position) bool {
	return z.XMin <= p.X && p.X <= z.XMax && z.YMin <= p.Y && p.Y <= z.YMax
}

//ClassifyOutcome maps a trajectory apex to a shot result: ResultMake when the
//apex lies inside the goal zone, ResultMiss otherwise. The default zone assumes
//a 480px wide reference frame, callers on other geometries must supply a
//rescaled zone through the configuration.
func ClassifyOutcome(peak Position, zone GoalZone) Result {
	if zone.Contains(peak) {
		return ResultMake
	}

	return ResultMiss
}
