/*Package chem is the main package of the mlbonds library. It provides the molecule
structure used through the bond perception pipeline, reading of XYZ geometries,
the atomic data tables and the all-pairs distance matrix.


	**mlbonds Capabilities**


    Reads XYZ files, plain or compressed with gzip or zstd.

    Computes the full interatomic distance matrix of a geometry.

    Builds per-pair geometric feature tables (package features) that can be
	exported as CSV, numpy or libsvm files to train bond classifiers.

    Scores candidate bonds with a trained XGBoost model, or with a simple
	covalent-radii criterion, and writes the result as an MDL V2000
	connection table (packages predict and molfile).

mlbonds uses its own matrix type for coordinates, v3.Matrix, based on gonum's Dense.
Each row of a v3.Matrix represents one point in space.*/
package chem
