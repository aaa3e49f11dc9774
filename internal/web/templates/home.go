package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomePage renders the public portfolio page: hero, about, selected work and
// resume. The sections are static markup; everything dynamic on the site
// lives behind the dashboard.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `
<section id="hero">
  <h1>Marina Sant'Anna</h1>
  <p>Product designer and front-end developer. I build small, careful
  interfaces and the tools behind them.</p>
</section>
<section id="about">
  <h2>About</h2>
  <p>I have spent the last decade working with studios and early-stage teams
  on design systems, marketing sites and internal tooling. This site doubles
  as my studio's admin surface.</p>
</section>
<section id="portfolio">
  <h2>Selected work</h2>
  <ul>
    <li>Wayfinding app for a regional transit agency</li>
    <li>Design system and component library for a fintech startup</li>
    <li>Editorial layout engine for an independent magazine</li>
  </ul>
</section>
<section id="resume">
  <h2>Resume</h2>
  <p>Previously at Studio Norte and Plural. Available for select freelance
  engagements.</p>
</section>`)
		return err
	})
}
