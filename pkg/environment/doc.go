// Package environment defines the deployment environments a binary can run
// in and parses their names from configuration.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	log := logger.New(logger.WithEnvironment(env, "brackets"))
package environment
