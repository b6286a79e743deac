// Package proxy builds synchronous lazy handles: objects that stand in for a value
// that has not been produced yet and forward every structural operation to it once
// it has.
//
// A handle implements object.Object, object.Callable and object.Constructor, so it
// can be passed to any code written against the object runtime. The first operation
// that needs the real value runs the factory's producer; later operations reuse the
// memoized value.
//
// Example:
//
//	double, _ := proxy.Create(proxy.ForFunction(func() (*object.Func, error) {
//	    return object.NewFunc("double", func(_ any, args ...any) (any, error) {
//	        return args[0].(int) * 2, nil
//	    }), nil
//	}))
//
//	v, _ := object.Call(double, nil, 21) // 42
package proxy
