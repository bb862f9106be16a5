/*Package features turns a molecule into the table of geometric descriptors that
a bond classifier consumes: one row per candidate atom pair closer than a cutoff,
with the pair canonicalized so that the atom with the higher atomic number always
comes first, followed by the identity and distances of the nearest neighbors of
each of the two atoms.

The column layout is described by a versioned Schema, which is saved next to a
trained model so that the model is never fed columns in a different order than
the one it was trained with.
*/
package features
