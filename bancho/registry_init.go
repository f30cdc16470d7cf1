package bancho

// buildEntry pairs a build number with the Codec its builder produced.
type buildEntry struct {
	build int
	codec *Codec
}

// allBuilds constructs every build's Codec by walking the derivation
// chain in order, each buildBXXX cloning and overriding its immediate
// predecessor's table. b296 and b320 are aliases of one another (no
// wire delta between them; see version_b296.go) so only b296 gets its
// own entry, and b20140528's slot-size change is gated dynamically on
// ProtocolVersion rather than needing a second registration.
func allBuilds() []buildEntry {
	b282 := buildB282()
	b291 := buildB291(b282)
	b294 := buildB294(b291)
	b296 := buildB296(b294)
	b323 := buildB323(b296)
	b334 := buildB334(b323)
	b388 := buildB388(b334)
	b452 := buildB452(b388)
	b470 := buildB470(b452)
	b487 := buildB487(b470)
	b489 := buildB489(b487)
	b535 := buildB535(b489)
	b558 := buildB558(b535)
	b591 := buildB591(b558)
	b634 := buildB634(b591)
	b1150 := buildB1150(b634)
	b1700 := buildB1700(b1150)
	b1788 := buildB1788(b1700)
	b1796 := buildB1796(b1788)
	b1800 := buildB1800(b1796)
	b1817 := buildB1817(b1800)
	b20121224 := buildB20121224(b1817)
	b20130815 := buildB20130815(b20121224)
	b20140528 := buildB20140528(b20130815)

	return []buildEntry{
		{282, b282},
		{291, b291},
		{294, b294},
		{296, b296},
		{323, b323},
		{334, b334},
		{388, b388},
		{452, b452},
		{470, b470},
		{487, b487},
		{489, b489},
		{535, b535},
		{558, b558},
		{591, b591},
		{634, b634},
		{1150, b1150},
		{1700, b1700},
		{1788, b1788},
		{1796, b1796},
		{1800, b1800},
		{1817, b1817},
		{20121224, b20121224},
		{20130815, b20130815},
		{20140528, b20140528},
	}
}
