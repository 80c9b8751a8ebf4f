/*
Package seamcarver is a content aware image reduction library. It shrinks an image
vertically or horizontally by repeatedly removing the connected path of pixels,
called seam, which carries the lowest energy.

The energy of a pixel is the squared color gradient of its four direct neighbours.
Pixels on the image border have a fixed, high energy (BorderEnergy) so that they
are never preferred. The lowest energy seam is the shortest path of a directed
acyclic graph built from the energy field, which can be searched with the explicit
graph (GraphStrategy) or by dynamic programming over the energy (DynamicStrategy).

The package provides a command line interface too. To check the supported flags type:

	$ seamcarver --help

Using the carver directly:

	c, err := seamcarver.NewCarver(img)
	if err != nil {
		log.Fatal(err)
	}
	for c.Width() > 100 {
		if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
			log.Fatal(err)
		}
	}
	out := c.Picture()

Or through the Processor, which decodes, resizes and encodes the image:

	p := &seamcarver.Processor{
		NewWidth:  100,
		NewHeight: 80,
	}
	if err := p.Process(in, out); err != nil {
		fmt.Printf("Error rescaling image: %s", err.Error())
	}
*/
package seamcarver
